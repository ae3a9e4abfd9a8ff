package quadmesh

import "github.com/unixpickle/model3d/model3d"

// InitDiagonals computes the shortest diagonal of every quad and fills the
// collapse queue. With useFitmap, diagonal lengths are weighted by the
// fitmap of their face.
//
// Existing doublets are repaired first, since collapses assume every vertex
// has degree at least three.
func (m *Mesh) InitDiagonals(useFitmap bool) {
	m.useFitmap = useFitmap
	m.diagonals = newPriorityQueue(func(a, b *Diagonal) bool {
		return a.Priority < b.Priority
	})
	m.pending = m.pending[:0]

	var all []FaceID
	for i := range m.Faces {
		if m.liveFace(FaceID(i)) {
			all = append(all, FaceID(i))
		}
	}
	m.RemoveDoublets(all)
	m.pending = m.pending[:0]

	for i := range m.Faces {
		f := FaceID(i)
		m.Faces[f].ToUpdate = false
		m.Faces[f].Diagonal = nil
		if m.liveFace(f) {
			if d := m.CreateDiagonal(f); d != nil {
				m.diagonals.Push(d)
			}
		}
	}
}

// CreateDiagonal computes the shorter diagonal of the quad f and caches it
// on the face. It returns nil for faces that are not quads.
func (m *Mesh) CreateDiagonal(f FaceID) *Diagonal {
	face := &m.Faces[f]
	face.Diagonal = nil
	if !m.liveFace(f) {
		return nil
	}
	ring := m.FaceEdges(f)
	if len(ring) != 4 {
		return nil
	}
	var corners [4]VertexID
	for i, e := range ring {
		corners[i] = m.origin(e)
	}
	coord := func(i int) model3d.Coord3D {
		return m.Vertices[corners[i]].Coords
	}
	d := &Diagonal{Face: f, V1: corners[0], V2: corners[2], Length: coord(0).Dist(coord(2))}
	if l := coord(1).Dist(coord(3)); l < d.Length {
		d.V1, d.V2, d.Length = corners[1], corners[3], l
	}
	d.Priority = d.Length
	if m.useFitmap {
		var s float64
		for _, v := range corners {
			s += m.Vertices[v].SFitmap
		}
		face.SFitmap = s / 4
		d.Priority *= face.SFitmap
	}
	face.Diagonal = d
	return d
}

// DiagonalCollapse collapses the best valid diagonal in the queue, merging
// its two endpoints and deleting its quad.
//
// It returns the number of polygons removed, including those removed while
// repairing the neighborhood, or false if no diagonal could be collapsed.
func (m *Mesh) DiagonalCollapse() (removed int, ok bool) {
	if m.diagonals == nil {
		m.InitDiagonals(false)
	}
	for m.diagonals.Len() > 0 {
		d := m.diagonals.Pop()
		if !m.diagonalValid(d) {
			continue
		}
		target := m.collapseTarget(d)
		if target == nil {
			continue
		}
		removed = m.collapse(target)
		m.UpdateDiagonals()
		if m.Strict {
			m.mustBeCorrect("diagonal collapse")
		}
		return removed, true
	}
	return 0, false
}

// UpdateDiagonals recomputes the diagonals of every face flagged ToUpdate.
func (m *Mesh) UpdateDiagonals() {
	for _, f := range m.pending {
		face := &m.Faces[f]
		if !face.ToUpdate {
			continue
		}
		face.ToUpdate = false
		if d := m.CreateDiagonal(f); d != nil && m.diagonals != nil {
			m.diagonals.Push(d)
		}
	}
	m.pending = m.pending[:0]
}

// Decimate collapses diagonals until at most targetFaces polygons remain or
// no collapse is possible. It returns the number of collapses and leaves
// the mesh compacted.
func (m *Mesh) Decimate(targetFaces int, useFitmap bool) int {
	if useFitmap {
		m.ComputeFitmap()
	}
	m.InitDiagonals(useFitmap)
	numFaces := m.NumFaces()
	var collapses int
	for numFaces > targetFaces {
		removed, ok := m.DiagonalCollapse()
		if !ok {
			break
		}
		numFaces -= removed
		collapses++
	}
	m.Clean()
	return collapses
}

func (m *Mesh) diagonalValid(d *Diagonal) bool {
	return m.liveFace(d.Face) && m.Faces[d.Face].Diagonal == d
}

// collapseTarget returns d if it can be collapsed safely. If another face
// also contains both endpoints, that face's diagonal is tried instead.
func (m *Mesh) collapseTarget(d *Diagonal) *Diagonal {
	if m.canCollapse(d) {
		return d
	}
	faces1 := map[FaceID]bool{}
	for _, f := range m.VertexFaces(d.V1) {
		faces1[f] = true
	}
	for _, f := range m.VertexFaces(d.V2) {
		if f == d.Face || !faces1[f] || !m.liveFace(f) {
			continue
		}
		other := m.Faces[f].Diagonal
		if other == nil {
			other = m.CreateDiagonal(f)
		}
		if other != nil && other != d && m.canCollapse(other) {
			return other
		}
	}
	return nil
}

// quadCorners returns the ring of the quad starting at the half-edge
// leaving d.V1, if d.V2 is the opposite corner.
func (m *Mesh) quadCorners(d *Diagonal) ([4]EdgeID, bool) {
	var res [4]EdgeID
	ring := m.FaceEdges(d.Face)
	if len(ring) != 4 {
		return res, false
	}
	for i, e := range ring {
		if m.origin(e) == d.V1 {
			for j := range res {
				res[j] = ring[(i+j)%4]
			}
			return res, m.origin(res[2]) == d.V2
		}
	}
	return res, false
}

// canCollapse checks that merging the endpoints of d keeps the mesh a
// manifold without creating duplicate edges.
func (m *Mesh) canCollapse(d *Diagonal) bool {
	ring, ok := m.quadCorners(d)
	if !ok {
		return false
	}
	a, b := m.dest(ring[0]), m.dest(ring[2])
	for i := 0; i < 4; i += 2 {
		if m.Edges[ring[i]].FaceLeft == m.Edges[ring[i+1]].FaceLeft {
			return false
		}
	}
	if m.Degree(a) < 3 || m.Degree(b) < 3 {
		return false
	}

	n1 := map[VertexID]bool{}
	for _, v := range m.VertexNeighbors(d.V1) {
		n1[v] = true
	}
	if n1[d.V2] {
		return false
	}
	for _, v := range m.VertexNeighbors(d.V2) {
		if n1[v] && v != a && v != b {
			return false
		}
	}

	faces1 := map[FaceID]bool{}
	for _, f := range m.VertexFaces(d.V1) {
		faces1[f] = true
	}
	for _, f := range m.VertexFaces(d.V2) {
		if f != d.Face && faces1[f] {
			return false
		}
	}
	return true
}

// collapse merges d.V2 into d.V1 and removes d's quad, zipping each pair
// of opposite wing edges into one edge.
func (m *Mesh) collapse(d *Diagonal) int {
	ring, _ := m.quadCorners(d)
	v1, v2 := d.V1, d.V2
	a, b := m.dest(ring[0]), m.dest(ring[2])
	var o [4]EdgeID
	var wings [4]FaceID
	for i, e := range ring {
		o[i] = m.rev(e)
		wings[i] = m.face(o[i])
	}

	p1, p2 := m.Vertices[v1].Coords, m.Vertices[v2].Coords
	pos := p1.Mid(p2)
	if b1, b2 := m.onBoundary(v1), m.onBoundary(v2); b1 && !b2 {
		pos = p1
	} else if b2 && !b1 {
		pos = p2
	}
	m.Vertices[v1].Coords = pos
	m.mergeVertices(v1, v2)

	for i := 0; i < 4; i += 2 {
		x, y := o[i], o[i+1]
		m.Edges[x].Reverse = y
		m.Edges[y].Reverse = x
		m.Edges[x].FaceLeft = wings[i+1]
		m.Edges[y].FaceLeft = wings[i]
	}
	for _, e := range o {
		m.link(m.prev(e), e)
		m.link(e, m.next(e))
	}

	m.Vertices[a].Edge = o[0]
	m.Vertices[b].Edge = o[2]
	m.Vertices[v1].Edge = o[3]
	for _, e := range ring {
		m.Edges[e].ToDelete = true
	}
	face := &m.Faces[d.Face]
	face.ToDelete = true
	face.Edge = NoEdge
	face.Diagonal = nil

	var seeds []FaceID
	seen := map[FaceID]bool{}
	for _, v := range []VertexID{v1, a, b} {
		for _, f := range m.VertexFaces(v) {
			if !seen[f] {
				seen[f] = true
				seeds = append(seeds, f)
				m.touch(f)
			}
		}
	}
	return 1 + m.RemoveDoublets(seeds)
}
