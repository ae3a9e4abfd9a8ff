package quadmesh

// VertexEdges lists the half-edges leaving v, in rotational order.
func (m *Mesh) VertexEdges(v VertexID) []EdgeID {
	start := m.Vertices[v].Edge
	if start == NoEdge {
		return nil
	}
	var res []EdgeID
	e := start
	for {
		res = append(res, e)
		e = m.next(m.rev(e))
		if e == start {
			return res
		}
		if len(res) > len(m.Edges) {
			panic("vertex star does not close")
		}
	}
}

// Degree counts the edges incident to v.
func (m *Mesh) Degree(v VertexID) int {
	return len(m.VertexEdges(v))
}

// VertexFaces lists the distinct faces around v, including hole faces.
func (m *Mesh) VertexFaces(v VertexID) []FaceID {
	var res []FaceID
	seen := map[FaceID]bool{}
	for _, e := range m.VertexEdges(v) {
		f := m.face(e)
		if !seen[f] {
			seen[f] = true
			res = append(res, f)
		}
	}
	return res
}

// VertexNeighbors lists the vertices joined to v by an edge.
func (m *Mesh) VertexNeighbors(v VertexID) []VertexID {
	edges := m.VertexEdges(v)
	res := make([]VertexID, len(edges))
	for i, e := range edges {
		res[i] = m.dest(e)
	}
	return res
}

// VerticesConnected checks for an edge between v1 and v2.
func (m *Mesh) VerticesConnected(v1, v2 VertexID) bool {
	for _, e := range m.VertexEdges(v1) {
		if m.dest(e) == v2 {
			return true
		}
	}
	return false
}

func (m *Mesh) onBoundary(v VertexID) bool {
	for _, f := range m.VertexFaces(v) {
		if m.Faces[f].Hole {
			return true
		}
	}
	return false
}

// mergeVertices moves every edge of from's star onto into and flags from
// for deletion.
func (m *Mesh) mergeVertices(into, from VertexID) {
	for _, e := range m.VertexEdges(from) {
		m.Edges[e].Origin = into
		m.Edges[m.rev(e)].Destination = into
	}
	fv := &m.Vertices[from]
	iv := &m.Vertices[into]
	if fv.SFitmap > iv.SFitmap {
		iv.SFitmap = fv.SFitmap
		iv.MFitmap = fv.MFitmap
	}
	fv.ToDelete = true
	fv.Edge = NoEdge
}
