package quadmesh

import "github.com/unixpickle/model3d/model3d"

// TriToPureQuad eliminates every remaining triangle.
//
// A triangle is moved next to the nearest other triangle and the two are
// merged into a quad. Triangles without a partner are moved to a boundary,
// where splitting the boundary edge turns them into quads. As a last
// resort a triangle is subdivided into three quads.
func (m *Mesh) TriToPureQuad() {
	for {
		t := m.firstTriangle()
		if t == NoFace {
			break
		}
		if path := m.shortestFacePath(t, m.isTriangle); path != nil {
			m.cancelTriangles(path)
		} else if path := m.pathToHole(t); path != nil {
			m.bubbleToHole(path)
		} else {
			m.SubdivideTriangle(t)
		}
		if m.Strict {
			m.mustBeCorrect("tri to pure quad")
		}
	}
}

func (m *Mesh) firstTriangle() FaceID {
	for i := range m.Faces {
		if m.isTriangle(FaceID(i)) {
			return FaceID(i)
		}
	}
	return NoFace
}

func (m *Mesh) isTriangle(f FaceID) bool {
	return m.liveFace(f) && m.Faces[f].IsTriangle
}

// shortestFacePath runs a breadth-first search over edge-adjacent polygons
// and returns the faces from start to the closest face satisfying goal.
func (m *Mesh) shortestFacePath(start FaceID, goal func(FaceID) bool) []FaceID {
	parent := map[FaceID]FaceID{start: NoFace}
	queue := []FaceID{start}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, g := range m.FaceNeighbors(f) {
			if _, ok := parent[g]; ok || !m.liveFace(g) {
				continue
			}
			parent[g] = f
			if goal(g) {
				var path []FaceID
				for x := g; x != NoFace; x = parent[x] {
					path = append(path, x)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, g)
		}
	}
	return nil
}

// pathToHole finds the faces from t to the closest face on a boundary,
// followed by the hole face itself.
func (m *Mesh) pathToHole(t FaceID) []FaceID {
	var path []FaceID
	if m.touchesHole(t) {
		path = []FaceID{t}
	} else {
		path = m.shortestFacePath(t, m.touchesHole)
		if path == nil {
			return nil
		}
	}
	last := path[len(path)-1]
	var hole FaceID = NoFace
	var holeLength float64
	for _, e := range m.FaceEdges(last) {
		f := m.Edges[e].FaceLeft
		if m.Faces[f].Hole {
			if l := m.EdgeLength(e); hole == NoFace || l > holeLength {
				hole, holeLength = f, l
			}
		}
	}
	return append(path, hole)
}

func (m *Mesh) cancelTriangles(path []FaceID) {
	for len(path) > 2 {
		path = m.bubbleStep(path)
	}
	m.mergeTrianglePair(path[0], path[1])
}

func (m *Mesh) bubbleToHole(path []FaceID) {
	for len(path) > 2 {
		path = m.bubbleStep(path)
	}
	t, hole := path[0], path[1]
	var best EdgeID = NoEdge
	for _, e := range m.SharedEdges(t, hole) {
		if best == NoEdge || m.EdgeLength(e) > m.EdgeLength(best) {
			best = e
		}
	}
	m.splitEdge(best, m.edgeMidpoint(best))
}

// bubbleStep moves the triangle path[0] into path[1], so that the new
// triangle borders path[2], and returns the shortened path.
func (m *Mesh) bubbleStep(path []FaceID) []FaceID {
	cur, next, after := path[0], path[1], path[2]
	if m.NumSharedEdges(next, cur) > 1 {
		in, out, ok := m.doubletWith(next, cur)
		if !ok || !m.removeDoublet(next, in, out) {
			panic("triangle shares several edges without a doublet")
		}
		return append([]FaceID{next}, path[2:]...)
	}

	g := m.EdgeBetween(next, after)
	m.removeEdge(m.EdgeBetween(next, cur))
	tri := m.cutTriangle(next, g)
	return append([]FaceID{tri}, path[2:]...)
}

// cutTriangle splits a triangle containing ring edge g off of f and
// returns it.
func (m *Mesh) cutTriangle(f FaceID, g EdgeID) FaceID {
	type option struct {
		a, c VertexID
	}
	x, y := m.origin(g), m.dest(g)
	options := []option{
		{a: m.dest(m.next(g)), c: x},
		{a: m.origin(m.prev(g)), c: y},
	}

	var lowDegree []VertexID
	for _, v := range m.FaceVertices(f) {
		if m.Degree(v) < 3 {
			lowDegree = append(lowDegree, v)
		}
	}

	best := -1
	var bestKey [3]float64
	for i, o := range options {
		var key [3]float64
		if m.VerticesConnected(o.a, o.c) {
			key[0] = 1
		}
		for _, v := range lowDegree {
			if v != o.a && v != o.c {
				key[1]++
			}
		}
		key[2] = m.Vertices[o.a].Coords.Dist(m.Vertices[o.c].Coords)
		if best == -1 || lexLess(key[:], bestKey[:]) {
			best, bestKey = i, key
		}
	}

	o := options[best]
	g2 := m.splitFace(f, o.a, o.c)
	if m.Faces[g2].IsTriangle {
		return g2
	}
	return f
}

func lexLess(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// mergeTrianglePair joins two adjacent triangles.
func (m *Mesh) mergeTrianglePair(t1, t2 FaceID) {
	switch m.NumSharedEdges(t1, t2) {
	case 1:
		m.removeEdge(m.EdgeBetween(t1, t2))
	case 2:
		in, out, ok := m.doubletWith(t1, t2)
		if !ok || !m.removeDoublet(t1, in, out) {
			m.SubdivideTriangle(t1)
			return
		}
		m.RemoveDoublets([]FaceID{t1})
	default:
		m.SubdivideTriangle(t1)
	}
}

// SubdivideTriangle splits the triangle f into three quads meeting at its
// centroid. Neighboring faces gain a corner at each edge midpoint.
func (m *Mesh) SubdivideTriangle(f FaceID) {
	ring := m.FaceEdges(f)
	if len(ring) != 3 {
		panic("face is not a triangle")
	}
	var center model3d.Coord3D
	for _, e := range ring {
		center = center.Add(m.Vertices[m.origin(e)].Coords)
	}
	center = center.Scale(1.0 / 3)

	var mids [3]VertexID
	for i, e := range ring {
		mids[i] = m.splitEdge(e, m.edgeMidpoint(e))
	}

	m.splitFace(f, mids[0], mids[2])
	var cut EdgeID = NoEdge
	for _, e := range m.FaceEdges(f) {
		if m.origin(e) == mids[2] && m.dest(e) == mids[0] {
			cut = e
		}
	}
	c := m.splitEdge(cut, center)
	m.splitFace(f, c, mids[1])
}

// doubletWith finds two consecutive ring edges of f, both bordering other,
// that meet at a vertex of degree two.
func (m *Mesh) doubletWith(f, other FaceID) (in, out EdgeID, ok bool) {
	for _, e := range m.FaceEdges(f) {
		n := m.next(e)
		if m.Edges[e].FaceLeft != other || m.Edges[n].FaceLeft != other {
			continue
		}
		if n != m.rev(e) && m.next(m.rev(n)) == m.rev(e) {
			return e, n, true
		}
	}
	return NoEdge, NoEdge, false
}
