package quadmesh

import (
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// FromModel3D converts a triangle mesh into a half-edge mesh, welding
// triangle corners with identical coordinates into one vertex.
//
// Vertices and faces are numbered in a deterministic order.
func FromModel3D(mesh *model3d.Mesh) (*Mesh, error) {
	var tris []*model3d.Triangle
	mesh.Iterate(func(t *model3d.Triangle) {
		tris = append(tris, t)
	})
	slices.SortFunc(tris, func(t1, t2 *model3d.Triangle) bool {
		for i := range t1 {
			if t1[i] != t2[i] {
				return coordLess(t1[i], t2[i])
			}
		}
		return false
	})

	index := map[model3d.Coord3D]int{}
	var coords []model3d.Coord3D
	faces := make([][]int, len(tris))
	for i, t := range tris {
		face := make([]int, 3)
		for j, c := range t {
			idx, ok := index[c]
			if !ok {
				idx = len(coords)
				index[c] = idx
				coords = append(coords, c)
			}
			face[j] = idx
		}
		faces[i] = face
	}
	return NewMesh(coords, faces)
}

func coordLess(c1, c2 model3d.Coord3D) bool {
	if c1.X != c2.X {
		return c1.X < c2.X
	} else if c1.Y != c2.Y {
		return c1.Y < c2.Y
	}
	return c1.Z < c2.Z
}

// Model3D fan-triangulates the live polygons of m.
func (m *Mesh) Model3D() *model3d.Mesh {
	res := model3d.NewMesh()
	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) {
			continue
		}
		ring := m.FaceEdges(f)
		p0 := m.Vertices[m.origin(ring[0])].Coords
		for _, e := range ring[1 : len(ring)-1] {
			res.Add(&model3d.Triangle{
				p0,
				m.Vertices[m.origin(e)].Coords,
				m.Vertices[m.dest(e)].Coords,
			})
		}
	}
	return res
}
