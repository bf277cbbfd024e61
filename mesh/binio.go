package mesh

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Checkpoint I/O. Values are written host-endian as fixed-width images; a
// stream is only promised to round-trip on the platform that wrote it. The
// header carries a magic, a format version, and a byte-order probe so a
// reader on the wrong platform fails loudly instead of decoding garbage.

const (
	checkpointMagic   uint32 = 0x54494e4d // "TINM"
	checkpointVersion uint32 = 1
	byteOrderProbe    uint32 = 0x01020304
)

// BinaryWrite copies value's fixed-width image into w. value must be a
// fixed-size type as understood by encoding/binary.
func BinaryWrite(w io.Writer, value interface{}) error {
	if err := binary.Write(w, binary.NativeEndian, value); err != nil {
		return errors.Wrap(err, "checkpoint write")
	}
	return nil
}

// BinaryRead fills value from r. value must be a pointer to a fixed-size
// type.
func BinaryRead(r io.Reader, value interface{}) error {
	if err := binary.Read(r, binary.NativeEndian, value); err != nil {
		return errors.Wrap(err, "checkpoint read")
	}
	return nil
}

// WriteCheckpointHeader stamps the stream with magic, version, and the
// byte-order probe.
func WriteCheckpointHeader(w io.Writer) error {
	for _, v := range [3]uint32{checkpointMagic, checkpointVersion, byteOrderProbe} {
		if err := BinaryWrite(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadCheckpointHeader validates the stream's header. It distinguishes a
// foreign byte order from plain corruption: a byte-swapped magic means the
// checkpoint came from a platform with the other endianness.
func ReadCheckpointHeader(r io.Reader) error {
	var magic, version, probe uint32
	if err := BinaryRead(r, &magic); err != nil {
		return err
	}
	if magic != checkpointMagic {
		if swap32(magic) == checkpointMagic {
			return errors.New("checkpoint was written on a platform with opposite byte order")
		}
		return errors.Errorf("bad checkpoint magic %#x", magic)
	}
	if err := BinaryRead(r, &version); err != nil {
		return err
	}
	if version != checkpointVersion {
		return errors.Errorf("unsupported checkpoint version %d", version)
	}
	if err := BinaryRead(r, &probe); err != nil {
		return err
	}
	if probe != byteOrderProbe {
		return errors.New("checkpoint was written on a platform with opposite byte order")
	}
	return nil
}

func swap32(v uint32) uint32 {
	return v<<24 | v>>24 | (v&0xff00)<<8 | (v>>8)&0xff00
}

// nodeImage is the fixed-width checkpoint record for one node.
type nodeImage struct {
	ID   int64
	X    float64
	Y    float64
	Z    float64
	Flag int32
	_    int32
}

// WriteNodes checkpoints every node in list order, header first. Edges and
// triangles are reconstructed on load, so only nodes are persisted.
func WriteNodes(w io.Writer, nodes *MeshList[*Node]) error {
	if err := WriteCheckpointHeader(w); err != nil {
		return err
	}
	if err := BinaryWrite(w, int64(nodes.Size())); err != nil {
		return err
	}
	for it := NewMeshIter(nodes); it.NodePtr() != nil; it.Next() {
		n := it.Get()
		img := nodeImage{
			ID:   int64(n.ID()),
			X:    n.X(),
			Y:    n.Y(),
			Z:    n.Z(),
			Flag: int32(n.Boundary()),
		}
		if err := BinaryWrite(w, &img); err != nil {
			return errors.Wrapf(err, "node %d", n.ID())
		}
	}
	return nil
}

// ReadNodes loads a node checkpoint into a fresh mesh list, restoring the
// partition by routing each node through InsertAtBack.
func ReadNodes(r io.Reader, nodes *MeshList[*Node]) error {
	if err := ReadCheckpointHeader(r); err != nil {
		return err
	}
	var count int64
	if err := BinaryRead(r, &count); err != nil {
		return err
	}
	if count < 0 {
		return errors.Errorf("negative node count %d", count)
	}
	nodes.Flush()
	for i := int64(0); i < count; i++ {
		var img nodeImage
		if err := BinaryRead(r, &img); err != nil {
			return errors.Wrapf(err, "node record %d of %d", i, count)
		}
		flag := BoundaryFlag(img.Flag)
		if flag < Interior || flag > ClosedBoundary {
			return errors.Errorf("node %d has invalid boundary flag %d", img.ID, img.Flag)
		}
		nodes.InsertAtBack(NewNode(int(img.ID), img.X, img.Y, img.Z, flag))
	}
	return nil
}
