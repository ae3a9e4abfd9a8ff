package quadmesh

import (
	"math"

	"github.com/unixpickle/essentials"
)

// ComputeFitmap scores every vertex by its discrete curvature.
//
// MFitmap is the angle defect of the vertex divided by the largest defect
// in the mesh, and SFitmap is 1+MFitmap. Faces take the mean scores of
// their corners.
func (m *Mesh) ComputeFitmap() {
	defects := make([]float64, len(m.Vertices))
	essentials.ConcurrentMap(0, len(m.Vertices), func(i int) {
		v := &m.Vertices[i]
		if v.ToDelete || v.Edge == NoEdge {
			return
		}
		defects[i] = m.angleDefect(VertexID(i))
	})

	var maxDefect float64
	for _, d := range defects {
		maxDefect = math.Max(maxDefect, d)
	}
	for i := range m.Vertices {
		var score float64
		if maxDefect > 0 {
			score = defects[i] / maxDefect
		}
		m.Vertices[i].MFitmap = score
		m.Vertices[i].SFitmap = 1 + score
	}

	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) {
			continue
		}
		corners := m.FaceVertices(f)
		var s, ms float64
		for _, v := range corners {
			s += m.Vertices[v].SFitmap
			ms += m.Vertices[v].MFitmap
		}
		m.Faces[f].SFitmap = s / float64(len(corners))
		m.Faces[f].MFitmap = ms / float64(len(corners))
	}
}

// angleDefect measures how far the polygon corners around v are from
// forming a flat disk, or a flat half-disk on a boundary.
func (m *Mesh) angleDefect(v VertexID) float64 {
	center := m.Vertices[v].Coords
	var total float64
	full := 2 * math.Pi
	for _, e := range m.VertexEdges(v) {
		if m.Faces[m.face(e)].Hole {
			full = math.Pi
			continue
		}
		d1 := unitDir(m.Vertices[m.dest(e)].Coords.Sub(center))
		d2 := unitDir(m.Vertices[m.origin(m.prev(e))].Coords.Sub(center))
		total += math.Acos(math.Max(-1, math.Min(1, d1.Dot(d2))))
	}
	return math.Abs(full - total)
}
