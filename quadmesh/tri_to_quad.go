package quadmesh

import "math"

const scoreEpsilon = 1e-9

// ToQuadMesh converts a triangle mesh to an all-quad mesh and optionally
// computes the fitmap of the result.
func (m *Mesh) ToQuadMesh(fitmap bool) {
	m.TriToQuad()
	if fitmap {
		m.ComputeFitmap()
	}
}

// TriToQuad pairs up triangles into quads, resolves the leftover
// triangles, and compacts the mesh.
func (m *Mesh) TriToQuad() {
	m.MarkEdgesForRemoval()
	m.RemoveMarkedEdges()
	m.TriToPureQuad()
	m.Clean()
	if m.Strict {
		m.mustBeCorrect("tri to quad")
		if n := m.HowManyTriangles(); n != 0 {
			panic("tri to quad: triangles remain")
		}
	}
}

type mergeCandidate struct {
	edge   EdgeID
	score  float64
	length float64
}

// MarkEdgesForRemoval picks, for every triangle, the edge whose removal
// would produce the squarest quad, and schedules a conflict-free subset of
// those edges for removal.
//
// Candidates are popped lowest score first. Among equal scores, the longer
// edge is popped first.
//
// A scheduled edge's faces are flagged ToMerge and the edge pair is flagged
// ToDelete. The number of scheduled edges is returned.
func (m *Mesh) MarkEdgesForRemoval() int {
	queue := newPriorityQueue(func(a, b mergeCandidate) bool {
		if math.Abs(a.score-b.score) > scoreEpsilon {
			return a.score < b.score
		}
		return a.length > b.length
	})
	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) || !m.Faces[f].IsTriangle {
			continue
		}
		best := mergeCandidate{edge: NoEdge}
		for _, e := range m.FaceEdges(f) {
			other := m.Edges[e].FaceLeft
			if other == f || !m.liveFace(other) || !m.Faces[other].IsTriangle {
				continue
			}
			c := mergeCandidate{
				edge:   e,
				score:  m.SumPairwiseDotProd(m.mergedVertices(e)),
				length: m.EdgeLength(e),
			}
			if best.edge == NoEdge || c.score < best.score-scoreEpsilon ||
				(math.Abs(c.score-best.score) <= scoreEpsilon && c.length > best.length) {
				best = c
			}
		}
		if best.edge != NoEdge {
			m.Edges[best.edge].SumDotProd = best.score
			m.Edges[m.rev(best.edge)].SumDotProd = best.score
			queue.Push(best)
		}
	}

	remaining := make([]int, len(m.Vertices))
	for i := range remaining {
		remaining[i] = -1
	}
	degree := func(v VertexID) int {
		if remaining[v] < 0 {
			remaining[v] = m.Degree(v)
		}
		return remaining[v]
	}

	m.scheduled = m.scheduled[:0]
	for queue.Len() > 0 {
		e := queue.Pop().edge
		if m.Edges[e].ToDelete || !m.IsRemovable(e) {
			continue
		}
		x, y := m.origin(e), m.dest(e)
		if degree(x) <= 3 || degree(y) <= 3 {
			continue
		}
		remaining[x]--
		remaining[y]--
		m.Edges[e].ToDelete = true
		m.Edges[m.rev(e)].ToDelete = true
		m.Faces[m.face(e)].ToMerge = true
		m.Faces[m.Edges[e].FaceLeft].ToMerge = true
		m.scheduled = append(m.scheduled, e)
	}
	return len(m.scheduled)
}

// mergedVertices lists the corners of the polygon obtained by dissolving
// e, starting at the destination of e.
func (m *Mesh) mergedVertices(e EdgeID) []VertexID {
	var res []VertexID
	for _, start := range []EdgeID{e, m.rev(e)} {
		for x := m.next(start); x != start; x = m.next(x) {
			res = append(res, m.origin(x))
		}
	}
	return res
}

// RemoveMarkedEdges dissolves the edges scheduled by MarkEdgesForRemoval
// and returns how many were removed.
func (m *Mesh) RemoveMarkedEdges() int {
	for _, e := range m.scheduled {
		m.removeEdge(e)
	}
	n := len(m.scheduled)
	m.scheduled = m.scheduled[:0]
	if m.Strict {
		m.mustBeCorrect("remove marked edges")
	}
	return n
}
