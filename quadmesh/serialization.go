package quadmesh

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// WriteMesh serializes the live polygons of m in a compact binary format
// with 32-bit precision coordinates.
func WriteMesh(w io.Writer, m *Mesh) error {
	indices := m.vertexIndices()
	header := []uint32{uint32(m.NumVertices()), uint32(m.NumFaces())}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write mesh")
	}

	coords := make([]float32, 0, 3*header[0])
	for _, v := range m.Vertices {
		if !v.ToDelete {
			coords = append(coords, float32(v.Coords.X), float32(v.Coords.Y), float32(v.Coords.Z))
		}
	}
	if err := binary.Write(w, binary.LittleEndian, coords); err != nil {
		return errors.Wrap(err, "write mesh")
	}

	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) {
			continue
		}
		ring := m.FaceEdges(f)
		face := make([]uint32, 0, len(ring)+1)
		face = append(face, uint32(len(ring)))
		for _, e := range ring {
			face = append(face, uint32(indices[m.origin(e)]))
		}
		if err := binary.Write(w, binary.LittleEndian, face); err != nil {
			return errors.Wrap(err, "write mesh")
		}
	}
	return nil
}

// ReadMesh reads the output written by WriteMesh.
//
// Counts in the stream are not trusted for allocation. Buffers grow only as
// data is actually read, so a corrupt header fails with an error.
func ReadMesh(r io.Reader) (*Mesh, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	flat, err := readChunked[float32](r, 3*int(header[0]))
	if err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	coords := make([]model3d.Coord3D, header[0])
	for i := range coords {
		coords[i] = model3d.XYZ(float64(flat[i*3]), float64(flat[i*3+1]), float64(flat[i*3+2]))
	}

	var faces [][]int
	for i := 0; i < int(header[1]); i++ {
		var size uint32
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return nil, errors.Wrap(err, "read mesh")
		}
		if size > header[0] {
			return nil, errors.Errorf("read mesh: face %d has %d corners", i, size)
		}
		corners, err := readChunked[uint32](r, int(size))
		if err != nil {
			return nil, errors.Wrap(err, "read mesh")
		}
		face := make([]int, size)
		for j, c := range corners {
			face[j] = int(c)
		}
		faces = append(faces, face)
	}

	m, err := NewMesh(coords, faces)
	if err != nil {
		return nil, errors.Wrap(err, "read mesh")
	}
	return m, nil
}

const readChunkSize = 1 << 16

// readChunked reads n little-endian values, at most readChunkSize at a
// time.
func readChunked[T float32 | uint32](r io.Reader, n int) ([]T, error) {
	var res []T
	for len(res) < n {
		chunk := make([]T, essentials.MinInt(readChunkSize, n-len(res)))
		if err := binary.Read(r, binary.LittleEndian, chunk); err != nil {
			return nil, err
		}
		res = append(res, chunk...)
	}
	return res, nil
}
