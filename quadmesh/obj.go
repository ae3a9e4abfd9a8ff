package quadmesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ReadOBJ decodes the vertices and polygons of a Wavefront OBJ file.
//
// Only "v" and "f" records are used. Face corners may be written as i,
// i/j, i//k or i/j/k, and negative indices count back from the latest
// vertex.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	coords, faces, err := readOBJ(r)
	if err != nil {
		return nil, errors.Wrap(err, "read obj")
	}
	m, err := NewMesh(coords, faces)
	if err != nil {
		return nil, errors.Wrap(err, "read obj")
	}
	return m, nil
}

func readOBJ(r io.Reader) ([]model3d.Coord3D, [][]int, error) {
	var coords []model3d.Coord3D
	var faces [][]int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<24)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, errors.Errorf("line %d: vertex needs three coordinates", lineNum)
			}
			var xyz [3]float64
			for i := range xyz {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "line %d", lineNum)
				}
				xyz[i] = x
			}
			coords = append(coords, model3d.XYZ(xyz[0], xyz[1], xyz[2]))
		case "f":
			face := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				if i := strings.IndexByte(field, '/'); i >= 0 {
					field = field[:i]
				}
				idx, err := strconv.Atoi(field)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "line %d", lineNum)
				}
				if idx > 0 {
					idx--
				} else if idx < 0 {
					idx += len(coords)
				} else {
					return nil, nil, errors.Errorf("line %d: vertex index 0", lineNum)
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return coords, faces, nil
}

// WriteOBJ encodes the live polygons of m as an OBJ file. Vertices are
// renumbered contiguously, and the first line is a "# <V> <F>" comment.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	indices := m.vertexIndices()
	fmt.Fprintf(bw, "# %d %d\n", m.NumVertices(), m.NumFaces())
	for _, v := range m.Vertices {
		if v.ToDelete {
			continue
		}
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.Coords.X), formatFloat(v.Coords.Y),
			formatFloat(v.Coords.Z))
	}
	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) {
			continue
		}
		bw.WriteString("f")
		for _, e := range m.FaceEdges(f) {
			fmt.Fprintf(bw, " %d", indices[m.origin(e)]+1)
		}
		bw.WriteString("\n")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write obj")
	}
	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// vertexIndices maps every vertex id to its position among the live
// vertices, or -1 for deleted vertices.
func (m *Mesh) vertexIndices() []int {
	res := make([]int, len(m.Vertices))
	var n int
	for i, v := range m.Vertices {
		if v.ToDelete {
			res[i] = -1
		} else {
			res[i] = n
			n++
		}
	}
	return res
}
