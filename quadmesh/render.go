package quadmesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/unixpickle/essentials"
)

// RenderVertices flattens the live vertex coordinates into an xyz buffer.
func (m *Mesh) RenderVertices() []float32 {
	res := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		if !v.ToDelete {
			res = append(res, float32(v.Coords.X), float32(v.Coords.Y), float32(v.Coords.Z))
		}
	}
	return res
}

// RenderIndices fan-triangulates every polygon into triangle indices for
// the RenderVertices buffer.
func (m *Mesh) RenderIndices() []uint32 {
	indices := m.vertexIndices()
	var res []uint32
	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) {
			continue
		}
		ring := m.FaceEdges(f)
		first := uint32(indices[m.origin(ring[0])])
		for _, e := range ring[1 : len(ring)-1] {
			res = append(res, first, uint32(indices[m.origin(e)]), uint32(indices[m.dest(e)]))
		}
	}
	return res
}

// LinesIndices lists one index pair per undirected edge.
func (m *Mesh) LinesIndices() []uint32 {
	indices := m.vertexIndices()
	var res []uint32
	for i, e := range m.Edges {
		if e.ToDelete || EdgeID(i) > e.Reverse {
			continue
		}
		res = append(res, uint32(indices[e.Origin]), uint32(indices[e.Destination]))
	}
	return res
}

// ModelMatrix centers the mesh at the origin and scales it so that its
// largest dimension spans [-1, 1].
func (m *Mesh) ModelMatrix() mgl64.Mat4 {
	min, max := m.Bounds()
	center := min.Mid(max)
	size := max.Sub(min).MaxCoord()
	scale := 1.0
	if size > 0 {
		scale = 2 / size
	}
	return mgl64.Scale3D(scale, scale, scale).Mul4(
		mgl64.Translate3D(-center.X, -center.Y, -center.Z),
	)
}

// Width is the extent of the mesh along the x axis.
func (m *Mesh) Width() float64 {
	min, max := m.Bounds()
	return max.X - min.X
}

// Height is the extent of the mesh along the y axis.
func (m *Mesh) Height() float64 {
	min, max := m.Bounds()
	return max.Y - min.Y
}

// Depth is the extent of the mesh along the z axis.
func (m *Mesh) Depth() float64 {
	min, max := m.Bounds()
	return max.Z - min.Z
}

// MinWidth is the smallest x coordinate of a live vertex.
func (m *Mesh) MinWidth() float64 {
	min, _ := m.Bounds()
	return min.X
}

// MaxWidth is the largest x coordinate of a live vertex.
func (m *Mesh) MaxWidth() float64 {
	_, max := m.Bounds()
	return max.X
}

// MinHeight is the smallest y coordinate of a live vertex.
func (m *Mesh) MinHeight() float64 {
	min, _ := m.Bounds()
	return min.Y
}

// MaxHeight is the largest y coordinate of a live vertex.
func (m *Mesh) MaxHeight() float64 {
	_, max := m.Bounds()
	return max.Y
}

// MinDepth is the smallest z coordinate of a live vertex.
func (m *Mesh) MinDepth() float64 {
	min, _ := m.Bounds()
	return min.Z
}

// MaxDepth is the largest z coordinate of a live vertex.
func (m *Mesh) MaxDepth() float64 {
	_, max := m.Bounds()
	return max.Z
}

// MaxFaceSize returns the number of corners of the largest polygon.
func (m *Mesh) MaxFaceSize() int {
	var res int
	for i := range m.Faces {
		if m.liveFace(FaceID(i)) {
			res = essentials.MaxInt(res, m.faceSize(FaceID(i)))
		}
	}
	return res
}
