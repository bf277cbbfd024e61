package mesh

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into basin outlines. It is not a real svg
// parser; it finds the first polygon element and returns its points in order.
// If anything goes wrong, it panics, since fixtures are under our control.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFix(name string) [][2]float64 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([][2]float64, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points
}

// buildBasinMesh fans a fixture outline around its centroid: the outline
// becomes closed-boundary nodes, the centroid an interior node, and every
// outline segment a triangle with the centroid. The fixture must be convex
// and counterclockwise for the fan to be valid.
func buildBasinMesh(name string) *Mesh {
	outline := loadFix(name)
	m := NewMesh()

	var cx, cy float64
	for _, p := range outline {
		cx += p[0]
		cy += p[1]
	}
	n := float64(len(outline))
	center := m.AddNode(cx/n, cy/n, 0, Interior)

	rim := make([]*Node, len(outline))
	for i, p := range outline {
		rim[i] = m.AddNode(p[0], p[1], 0, ClosedBoundary)
	}
	for i := range rim {
		m.AddEdgePair(rim[i], rim[(i+1)%len(rim)])
		m.AddEdgePair(center, rim[i])
	}
	for i := range rim {
		m.AddTriangle(center, rim[i], rim[(i+1)%len(rim)])
	}
	return m
}
