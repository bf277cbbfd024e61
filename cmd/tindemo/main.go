package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	tinmesh "github.com/tinmesh/tinmesh"
)

// Demo of the mesh core. Input on stdin should be newline separated nodes in
// the form "x y z flag", where flag is 0 interior, 1 stream, 2 open boundary,
// 3 closed boundary. Prints the partition summary and, when three or more
// active nodes are given, how the first triple winds.
func main() {
	m := tinmesh.NewMesh()
	points := readNodes(os.Stdin, m)

	fmt.Printf("Read %d nodes (%d active, %d boundary)\n",
		m.Nodes.Size(), m.Nodes.ActiveSize(), m.Nodes.Size()-m.Nodes.ActiveSize())

	if len(points) >= 3 {
		orient := tinmesh.Orient2D(points[0], points[1], points[2])
		switch {
		case orient > 0:
			fmt.Println("First triple winds counterclockwise")
		case orient < 0:
			fmt.Println("First triple winds clockwise")
		default:
			fmt.Println("First triple is collinear")
		}
	}
}

func readNodes(in *os.File, m *tinmesh.Mesh) [][2]float64 {
	points := [][2]float64{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		x, y, z, flag := parseNode(line)
		m.AddNode(x, y, z, flag)
		points = append(points, [2]float64{x, y})
	}
	return points
}

func parseNode(line string) (x, y, z float64, flag tinmesh.BoundaryFlag) {
	parts := strings.Fields(line)
	x, _ = strconv.ParseFloat(parts[0], 64)
	y, _ = strconv.ParseFloat(parts[1], 64)
	if len(parts) > 2 {
		z, _ = strconv.ParseFloat(parts[2], 64)
	}
	if len(parts) > 3 {
		f, _ := strconv.Atoi(parts[3])
		flag = tinmesh.BoundaryFlag(f)
	}
	return x, y, z, flag
}
