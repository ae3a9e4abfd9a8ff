package quadmesh

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

func (m *Mesh) next(e EdgeID) EdgeID {
	return m.Edges[e].RightCW
}

func (m *Mesh) prev(e EdgeID) EdgeID {
	return m.Edges[e].RightCCW
}

func (m *Mesh) rev(e EdgeID) EdgeID {
	return m.Edges[e].Reverse
}

func (m *Mesh) face(e EdgeID) FaceID {
	return m.Edges[e].FaceRight
}

func (m *Mesh) origin(e EdgeID) VertexID {
	return m.Edges[e].Origin
}

func (m *Mesh) dest(e EdgeID) VertexID {
	return m.Edges[e].Destination
}

// link makes b follow a in their face ring and mirrors the relation onto
// the left links of both reverses.
func (m *Mesh) link(a, b EdgeID) {
	m.Edges[a].RightCW = b
	m.Edges[b].RightCCW = a
	ra, rb := m.Edges[a].Reverse, m.Edges[b].Reverse
	m.Edges[ra].LeftCW = rb
	m.Edges[rb].LeftCCW = ra
}

func (m *Mesh) setFace(e EdgeID, f FaceID) {
	m.Edges[e].FaceRight = f
	m.Edges[m.Edges[e].Reverse].FaceLeft = f
}

// IsRemovable checks that neither face of e is already scheduled for a
// merge.
func (m *Mesh) IsRemovable(e EdgeID) bool {
	edge := &m.Edges[e]
	if edge.FaceLeft == NoFace || edge.FaceRight == NoFace {
		return false
	}
	return !m.Faces[edge.FaceLeft].ToMerge && !m.Faces[edge.FaceRight].ToMerge
}

// EdgeLength computes the distance between the endpoints of e.
func (m *Mesh) EdgeLength(e EdgeID) float64 {
	edge := &m.Edges[e]
	return m.Vertices[edge.Origin].Coords.Dist(m.Vertices[edge.Destination].Coords)
}

func (m *Mesh) edgeMidpoint(e EdgeID) model3d.Coord3D {
	edge := &m.Edges[e]
	return m.Vertices[edge.Origin].Coords.Mid(m.Vertices[edge.Destination].Coords)
}

// SumPairwiseDotProd measures how far the closed polygon through vertices
// is from having right angles at every corner.
//
// The result is the sum of absolute dot products between consecutive
// normalized edge directions, so 0 means every corner is square.
func (m *Mesh) SumPairwiseDotProd(vertices []VertexID) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	dirs := make([]model3d.Coord3D, n)
	for i, v := range vertices {
		next := vertices[(i+1)%n]
		dirs[i] = unitDir(m.Vertices[next].Coords.Sub(m.Vertices[v].Coords))
	}
	var sum float64
	for i, d := range dirs {
		sum += math.Abs(d.Dot(dirs[(i+1)%n]))
	}
	return sum
}

func unitDir(c model3d.Coord3D) model3d.Coord3D {
	norm := c.Norm()
	if norm == 0 {
		return c
	}
	return c.Scale(1 / norm)
}

// EdgePos reports which neighbor link of e points at other.
func (m *Mesh) EdgePos(e, other EdgeID) EdgePos {
	edge := &m.Edges[e]
	switch other {
	case edge.LeftCW:
		return EdgeLeftCW
	case edge.LeftCCW:
		return EdgeLeftCCW
	case edge.RightCW:
		return EdgeRightCW
	case edge.RightCCW:
		return EdgeRightCCW
	}
	return EdgeNone
}

// CreateReversed fills target with the mirror image of e: endpoints and
// faces swapped, and every neighbor link taken from the opposite side.
// The neighbors of e must already have reverses.
func (m *Mesh) CreateReversed(e EdgeID, target *Edge) {
	src := m.Edges[e]
	rev := func(x EdgeID) EdgeID {
		if x == NoEdge || m.Edges[x].Reverse == NoEdge {
			return NoEdge
		}
		return m.Edges[x].Reverse
	}
	*target = Edge{
		Origin:      src.Destination,
		Destination: src.Origin,
		FaceLeft:    src.FaceRight,
		FaceRight:   src.FaceLeft,
		LeftCW:      rev(src.RightCW),
		LeftCCW:     rev(src.RightCCW),
		RightCW:     rev(src.LeftCW),
		RightCCW:    rev(src.LeftCCW),
		Reverse:     e,
		SumDotProd:  src.SumDotProd,
	}
}

// updateAllNeighbours unlinks the pair e from both face rings, joining the
// ring of e's face with the ring across the edge.
func (m *Mesh) updateAllNeighbours(e EdgeID) {
	r := m.rev(e)
	p, n := m.prev(e), m.next(e)
	pr, nr := m.prev(r), m.next(r)
	m.link(p, nr)
	m.link(pr, n)
}

// removeEdge dissolves the edge pair of e, merging the face across e into
// the face of e, and returns the surviving face.
func (m *Mesh) removeEdge(e EdgeID) FaceID {
	r := m.rev(e)
	keep, other := m.face(e), m.face(r)
	if keep == other {
		panic("cannot remove an edge with the same face on both sides")
	}
	n, nr := m.next(e), m.next(r)
	if nr == m.rev(m.prev(e)) || n == m.rev(m.prev(r)) {
		panic("removing edge would leave a dangling vertex")
	}

	x, y := m.origin(e), m.dest(e)
	if m.Vertices[x].Edge == e {
		m.Vertices[x].Edge = nr
	}
	if m.Vertices[y].Edge == r {
		m.Vertices[y].Edge = n
	}
	if m.Faces[keep].Edge == e {
		m.Faces[keep].Edge = n
	}

	m.updateAllNeighbours(e)
	m.mergeFace(keep, other)
	m.Edges[e].ToDelete = true
	m.Edges[r].ToDelete = true
	return keep
}

// splitEdge inserts a new vertex at pos in the middle of the edge pair e.
// Afterwards e ends at the new vertex.
func (m *Mesh) splitEdge(e EdgeID, pos model3d.Coord3D) VertexID {
	r := m.rev(e)
	y := m.dest(e)
	n, pr := m.next(e), m.prev(r)

	v := m.addVertex(pos)
	e2, r2 := m.addEdgePair(v, y, m.face(e), m.face(r))

	m.Edges[e].Destination = v
	m.Edges[r].Origin = v
	m.Vertices[v].Edge = e2
	if m.Vertices[y].Edge == r {
		m.Vertices[y].Edge = r2
	}

	m.link(e, e2)
	m.link(e2, n)
	m.link(pr, r2)
	m.link(r2, r)

	m.refreshFace(m.face(e))
	m.refreshFace(m.face(r))
	return v
}

// MergeEdge joins the consecutive half-edges in and out, which meet at a
// vertex of degree two, into the single half-edge in.
//
// The shared vertex and the half-edges out and in.Reverse are flagged for
// deletion.
func (m *Mesh) MergeEdge(in, out EdgeID) {
	v := m.dest(in)
	if m.next(in) != out || m.origin(out) != v {
		panic("edges are not consecutive")
	}
	rin, rout := m.rev(in), m.rev(out)
	if m.next(rout) != rin {
		panic("shared vertex must have degree two")
	}
	if m.next(out) == in {
		panic("cannot merge the edges of a two-sided face")
	}
	u, w := m.origin(in), m.dest(out)
	if u == w {
		panic("merged edge would be a loop")
	}
	nOut, nRin := m.next(out), m.next(rin)
	a, b := m.face(in), m.face(rout)

	m.Edges[in].Destination = w
	m.Edges[rout].Destination = u
	m.Edges[in].Reverse = rout
	m.Edges[rout].Reverse = in
	if m.Faces[a].Edge == out {
		m.Faces[a].Edge = in
	}
	if m.Faces[b].Edge == rin {
		m.Faces[b].Edge = rout
	}

	m.link(in, nOut)
	m.link(rout, nRin)
	m.link(m.prev(in), in)
	m.link(m.prev(rout), rout)

	m.Edges[out].ToDelete = true
	m.Edges[rin].ToDelete = true
	m.Vertices[v].ToDelete = true
	m.Vertices[v].Edge = NoEdge

	m.refreshFace(a)
	m.refreshFace(b)
}
