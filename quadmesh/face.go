package quadmesh

// FaceEdges walks the boundary ring of f, starting at f's reference edge.
func (m *Mesh) FaceEdges(f FaceID) []EdgeID {
	return m.FaceEdgesFrom(f, m.Faces[f].Edge)
}

// FaceEdgesFrom walks the boundary ring of f starting at start. If start
// borders f from the other side, its reverse is used instead.
func (m *Mesh) FaceEdgesFrom(f FaceID, start EdgeID) []EdgeID {
	if start == NoEdge {
		return nil
	}
	if m.face(start) != f && m.Edges[start].FaceLeft == f {
		start = m.rev(start)
	}
	var res []EdgeID
	e := start
	for {
		res = append(res, e)
		e = m.next(e)
		if e == start {
			return res
		}
		if len(res) > len(m.Edges) {
			panic("face ring does not close")
		}
	}
}

// FaceEdgesBoth lists the ring of f followed by the reverses of the ring
// edges.
func (m *Mesh) FaceEdgesBoth(f FaceID) []EdgeID {
	ring := m.FaceEdges(f)
	res := make([]EdgeID, 0, len(ring)*2)
	res = append(res, ring...)
	for _, e := range ring {
		res = append(res, m.rev(e))
	}
	return res
}

func (m *Mesh) faceSize(f FaceID) int {
	start := m.Faces[f].Edge
	if start == NoEdge {
		return 0
	}
	n := 1
	for e := m.next(start); e != start; e = m.next(e) {
		n++
		if n > len(m.Edges) {
			panic("face ring does not close")
		}
	}
	return n
}

func (m *Mesh) refreshFace(f FaceID) {
	face := &m.Faces[f]
	face.IsTriangle = !face.Hole && !face.ToDelete && m.faceSize(f) == 3
}

// FaceVertices lists the distinct corners of f in ring order.
func (m *Mesh) FaceVertices(f FaceID) []VertexID {
	var res []VertexID
	seen := map[VertexID]bool{}
	for _, e := range m.FaceEdges(f) {
		v := m.origin(e)
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	return res
}

// FaceNeighbors lists the distinct faces across the edges of f, including
// hole faces.
func (m *Mesh) FaceNeighbors(f FaceID) []FaceID {
	var res []FaceID
	seen := map[FaceID]bool{f: true}
	for _, e := range m.FaceEdges(f) {
		g := m.Edges[e].FaceLeft
		if !seen[g] {
			seen[g] = true
			res = append(res, g)
		}
	}
	return res
}

// AllSurroundingFaces lists the distinct faces sharing at least one vertex
// with f.
func (m *Mesh) AllSurroundingFaces(f FaceID) []FaceID {
	var res []FaceID
	seen := map[FaceID]bool{f: true}
	for _, v := range m.FaceVertices(f) {
		for _, g := range m.VertexFaces(v) {
			if !seen[g] {
				seen[g] = true
				res = append(res, g)
			}
		}
	}
	return res
}

// mergeFace absorbs other into keep once their rings have been joined.
func (m *Mesh) mergeFace(keep, other FaceID) {
	for _, e := range m.FaceEdges(keep) {
		m.setFace(e, keep)
	}
	k := &m.Faces[keep]
	k.ToMerge = false
	k.Diagonal = nil

	o := &m.Faces[other]
	o.ToDelete = true
	o.ToMerge = false
	o.Diagonal = nil
	o.Edge = NoEdge
	o.IsTriangle = false

	m.refreshFace(keep)
}

// splitFace cuts f along a new edge between its corners a and c. The part
// of the ring running from a to c stays in f; the new face holding the
// rest is returned.
func (m *Mesh) splitFace(f FaceID, a, c VertexID) FaceID {
	ea, ec := NoEdge, NoEdge
	for _, e := range m.FaceEdges(f) {
		switch m.origin(e) {
		case a:
			ea = e
		case c:
			ec = e
		}
	}
	if a == c || ea == NoEdge || ec == NoEdge {
		panic("split vertices are not corners of the face")
	}
	if m.dest(ea) == c || m.dest(ec) == a {
		panic("split vertices are adjacent")
	}
	pa, pc := m.prev(ea), m.prev(ec)

	g := m.addFace()
	d, dr := m.addEdgePair(c, a, f, g)
	m.link(pc, d)
	m.link(d, ea)
	m.link(pa, dr)
	m.link(dr, ec)

	m.Faces[f].Edge = ea
	m.Faces[g].Edge = ec
	m.setFace(d, f)
	for _, e := range m.FaceEdges(g) {
		m.setFace(e, g)
	}
	m.refreshFace(f)
	m.refreshFace(g)
	return g
}

// EdgeBetween finds the half-edge of f1's ring whose other side is f2.
func (m *Mesh) EdgeBetween(f1, f2 FaceID) EdgeID {
	for _, e := range m.FaceEdges(f1) {
		if m.Edges[e].FaceLeft == f2 {
			return e
		}
	}
	return NoEdge
}

// SharedEdges lists the half-edges of f1's ring bordering f2.
func (m *Mesh) SharedEdges(f1, f2 FaceID) []EdgeID {
	var res []EdgeID
	for _, e := range m.FaceEdges(f1) {
		if m.Edges[e].FaceLeft == f2 {
			res = append(res, e)
		}
	}
	return res
}

// NumSharedEdges counts the edges between f1 and f2.
func (m *Mesh) NumSharedEdges(f1, f2 FaceID) int {
	return len(m.SharedEdges(f1, f2))
}

// UnconnectedVertices lists the corners of f1 which are not corners of f2.
func (m *Mesh) UnconnectedVertices(f1, f2 FaceID) []VertexID {
	other := map[VertexID]bool{}
	for _, v := range m.FaceVertices(f2) {
		other[v] = true
	}
	var res []VertexID
	for _, v := range m.FaceVertices(f1) {
		if !other[v] {
			res = append(res, v)
		}
	}
	return res
}

// CommonVertex finds a corner of f3 which is also a corner of both f1 and
// f2, or NoVertex.
func (m *Mesh) CommonVertex(f1, f2, f3 FaceID) VertexID {
	in1 := map[VertexID]bool{}
	for _, v := range m.FaceVertices(f1) {
		in1[v] = true
	}
	in2 := map[VertexID]bool{}
	for _, v := range m.FaceVertices(f2) {
		in2[v] = true
	}
	for _, v := range m.FaceVertices(f3) {
		if in1[v] && in2[v] {
			return v
		}
	}
	return NoVertex
}

// OppositeVertex returns the corner of a quad across from v, or NoVertex if
// f is not a quad containing v.
func (m *Mesh) OppositeVertex(f FaceID, v VertexID) VertexID {
	ring := m.FaceEdges(f)
	if len(ring) != 4 {
		return NoVertex
	}
	for _, e := range ring {
		if m.origin(e) == v {
			return m.dest(m.next(e))
		}
	}
	return NoVertex
}

// IsDoublet finds two consecutive ring edges of f meeting at a vertex of
// degree two.
func (m *Mesh) IsDoublet(f FaceID) (in, out EdgeID, ok bool) {
	for _, e := range m.FaceEdges(f) {
		n := m.next(e)
		if n != m.rev(e) && m.next(m.rev(n)) == m.rev(e) {
			return e, n, true
		}
	}
	return NoEdge, NoEdge, false
}

// IsSinglet reports whether the ring of f revisits corners so that only
// three distinct vertices remain.
func (m *Mesh) IsSinglet(f FaceID) bool {
	return m.faceSize(f) > 3 && len(m.FaceVertices(f)) == 3
}

func (m *Mesh) findSpike(f FaceID) (EdgeID, bool) {
	for _, e := range m.FaceEdges(f) {
		if m.next(e) == m.rev(e) {
			return e, true
		}
	}
	return NoEdge, false
}

func (m *Mesh) touchesHole(f FaceID) bool {
	for _, e := range m.FaceEdges(f) {
		if m.Faces[m.Edges[e].FaceLeft].Hole {
			return true
		}
	}
	return false
}

func (m *Mesh) liveFace(f FaceID) bool {
	return f != NoFace && !m.Faces[f].ToDelete && !m.Faces[f].Hole
}
