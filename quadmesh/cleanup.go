package quadmesh

// RemoveDoublets repairs degenerate configurations reachable from faces:
// spikes (singlets), two-sided faces, and doublets (vertices of degree two
// shared by two polygons). It returns the number of polygons removed.
//
// Repairs are driven by a worklist, and every face touched by a repair is
// revisited and flagged ToUpdate.
func (m *Mesh) RemoveDoublets(faces []FaceID) int {
	queue := append([]FaceID{}, faces...)
	var removed int
	for len(queue) > 0 {
		f := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !m.liveFace(f) {
			continue
		}
		if e, ok := m.findSpike(f); ok && m.removeSpike(e) {
			m.touch(f)
			queue = append(queue, f)
			continue
		}
		if m.faceSize(f) == 2 {
			neighbors := m.FaceNeighbors(f)
			if m.removeTwoGon(f) {
				removed++
				for _, g := range neighbors {
					m.touch(g)
				}
				queue = append(queue, neighbors...)
			}
			continue
		}
		if in, out, ok := m.findDoublet(f); ok {
			neighbors := m.FaceNeighbors(f)
			if m.removeDoublet(f, in, out) {
				removed++
				m.touch(f)
				for _, g := range neighbors {
					m.touch(g)
				}
				queue = append(queue, f)
				queue = append(queue, neighbors...)
			}
		}
	}
	return removed
}

func (m *Mesh) touch(f FaceID) {
	if !m.liveFace(f) {
		return
	}
	if !m.Faces[f].ToUpdate {
		m.Faces[f].ToUpdate = true
		m.pending = append(m.pending, f)
	}
}

// findDoublet is like IsDoublet, but ignores doublets that cannot be
// repaired: those on a boundary and those of a closed two-face pillow.
func (m *Mesh) findDoublet(f FaceID) (in, out EdgeID, ok bool) {
	for _, e := range m.FaceEdges(f) {
		n := m.next(e)
		if n == m.rev(e) || m.next(m.rev(n)) != m.rev(e) {
			continue
		}
		other := m.Edges[n].FaceLeft
		if other == f || !m.liveFace(other) || m.isPillow(f, other) {
			continue
		}
		return e, n, true
	}
	return NoEdge, NoEdge, false
}

func (m *Mesh) isPillow(f, other FaceID) bool {
	ring := m.FaceEdges(f)
	for _, e := range ring {
		if m.Edges[e].FaceLeft != other {
			return false
		}
	}
	return len(ring) == m.faceSize(other)
}

// removeDoublet merges f with the face across the doublet in/out. The whole
// chain of degree-two vertices shared by the two faces is dissolved, and f
// survives.
func (m *Mesh) removeDoublet(f FaceID, in, out EdgeID) bool {
	other := m.Edges[out].FaceLeft
	if other == f || m.Faces[other].Hole || m.isPillow(f, other) {
		return false
	}
	for ok := true; ok; in, out, ok = m.doubletWith(f, other) {
		if m.next(out) == in || m.origin(in) == m.dest(out) {
			return false
		}
		m.MergeEdge(in, out)
	}
	shared := m.EdgeBetween(f, other)
	if shared == NoEdge {
		panic("doublet faces no longer share an edge")
	}
	m.removeEdge(shared)
	return true
}

// removeSpike excises an edge e whose ring continues straight back along
// its reverse, deleting the dangling vertex.
func (m *Mesh) removeSpike(e EdgeID) bool {
	r := m.rev(e)
	if m.next(e) != r {
		return false
	}
	p, n := m.prev(e), m.next(r)
	if p == r || p == n {
		return false
	}
	f := m.face(e)
	x, y := m.origin(e), m.dest(e)
	m.link(p, n)
	if m.Vertices[x].Edge == e {
		m.Vertices[x].Edge = n
	}
	if fe := m.Faces[f].Edge; fe == e || fe == r {
		m.Faces[f].Edge = n
	}
	m.Vertices[y].ToDelete = true
	m.Vertices[y].Edge = NoEdge
	m.Edges[e].ToDelete = true
	m.Edges[r].ToDelete = true
	m.refreshFace(f)
	return true
}

// removeTwoGon deletes a two-sided face by pairing up the half-edges on
// either side of it.
func (m *Mesh) removeTwoGon(f FaceID) bool {
	ring := m.FaceEdges(f)
	if len(ring) != 2 {
		return false
	}
	g1, g2 := ring[0], ring[1]
	o1, o2 := m.rev(g1), m.rev(g2)
	if o1 == g2 {
		return false
	}
	x, y := m.origin(g1), m.dest(g1)

	m.Edges[o1].Reverse = o2
	m.Edges[o2].Reverse = o1
	m.Edges[o1].FaceLeft = m.face(o2)
	m.Edges[o2].FaceLeft = m.face(o1)
	for _, o := range []EdgeID{o1, o2} {
		m.link(m.prev(o), o)
		m.link(o, m.next(o))
	}
	if m.Vertices[x].Edge == g1 {
		m.Vertices[x].Edge = o2
	}
	if m.Vertices[y].Edge == g2 {
		m.Vertices[y].Edge = o1
	}

	m.Edges[g1].ToDelete = true
	m.Edges[g2].ToDelete = true
	face := &m.Faces[f]
	face.ToDelete = true
	face.Edge = NoEdge
	face.Diagonal = nil
	face.IsTriangle = false
	return true
}
