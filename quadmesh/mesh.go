package quadmesh

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var (
	ErrNonManifold    = errors.New("mesh is not an oriented manifold")
	ErrDegenerateFace = errors.New("degenerate face")
	ErrIndexRange     = errors.New("vertex index out of range")
)

// A Mesh is a half-edge polygon mesh stored in three arenas.
//
// Elements are addressed by their arena index. Operations flag removed
// elements with ToDelete and Clean compacts the arenas.
type Mesh struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face

	// Strict makes every mutating operation verify the whole mesh with
	// CheckCorrectness and panic on the first violation.
	Strict bool

	diagonals *priorityQueue[*Diagonal]
	useFitmap bool
	pending   []FaceID
	scheduled []EdgeID
}

// NewMesh builds a mesh from vertex coordinates and faces listed as
// counter-clockwise vertex index loops.
//
// Half-edges without a twin are paired with half-edges of hole faces, one
// hole per boundary loop.
func NewMesh(coords []model3d.Coord3D, faces [][]int) (*Mesh, error) {
	m := &Mesh{
		Vertices: make([]Vertex, len(coords)),
		Faces:    make([]Face, 0, len(faces)),
	}
	for i, c := range coords {
		m.Vertices[i] = Vertex{Coords: c, Edge: NoEdge, SFitmap: 1}
	}

	directed := map[[2]VertexID]EdgeID{}
	rings := make([][]EdgeID, 0, len(faces))
	for i, face := range faces {
		if len(face) < 3 {
			return nil, errors.Wrapf(ErrDegenerateFace, "face %d has %d vertices", i, len(face))
		}
		seen := map[int]bool{}
		for _, idx := range face {
			if idx < 0 || idx >= len(coords) {
				return nil, errors.Wrapf(ErrIndexRange, "face %d references vertex %d", i, idx)
			}
			if seen[idx] {
				return nil, errors.Wrapf(ErrDegenerateFace, "face %d repeats vertex %d", i, idx)
			}
			seen[idx] = true
		}
		f := m.addFace()
		ring := make([]EdgeID, len(face))
		for j, idx := range face {
			key := [2]VertexID{VertexID(idx), VertexID(face[(j+1)%len(face)])}
			if _, ok := directed[key]; ok {
				return nil, errors.Wrapf(ErrNonManifold, "half-edge %d->%d used twice", key[0], key[1])
			}
			e := m.addEdge(key[0], key[1])
			m.Edges[e].FaceRight = f
			directed[key] = e
			ring[j] = e
		}
		m.Faces[f].Edge = ring[0]
		rings = append(rings, ring)
	}

	numEdges := len(m.Edges)
	var twins []EdgeID
	for i := 0; i < numEdges; i++ {
		e := EdgeID(i)
		key := [2]VertexID{m.Edges[e].Destination, m.Edges[e].Origin}
		if r, ok := directed[key]; ok {
			m.Edges[e].Reverse = r
			continue
		}
		t := m.addEdge(key[0], key[1])
		m.Edges[t].Reverse = e
		m.Edges[e].Reverse = t
		twins = append(twins, t)
	}

	outgoing := map[VertexID]EdgeID{}
	for _, t := range twins {
		o := m.Edges[t].Origin
		if _, ok := outgoing[o]; ok {
			return nil, errors.Wrapf(ErrNonManifold, "vertex %d is on two boundary loops", o)
		}
		outgoing[o] = t
	}
	for _, t := range twins {
		if m.Edges[t].FaceRight != NoFace {
			continue
		}
		h := m.addFace()
		m.Faces[h].Hole = true
		m.Faces[h].Edge = t
		var ring []EdgeID
		cur := t
		for m.Edges[cur].FaceRight == NoFace {
			m.Edges[cur].FaceRight = h
			ring = append(ring, cur)
			next, ok := outgoing[m.Edges[cur].Destination]
			if !ok {
				return nil, errors.Wrap(ErrNonManifold, "boundary loop does not close")
			}
			cur = next
		}
		if cur != t {
			return nil, errors.Wrap(ErrNonManifold, "boundary loops intersect")
		}
		rings = append(rings, ring)
	}

	for _, ring := range rings {
		for j, e := range ring {
			m.link(e, ring[(j+1)%len(ring)])
		}
	}
	for i := range m.Edges {
		e := &m.Edges[i]
		e.FaceLeft = m.Edges[e.Reverse].FaceRight
		if v := &m.Vertices[e.Origin]; v.Edge == NoEdge {
			v.Edge = EdgeID(i)
		}
	}
	for f := range m.Faces {
		m.refreshFace(FaceID(f))
	}
	return m, nil
}

func (m *Mesh) addVertex(c model3d.Coord3D) VertexID {
	m.Vertices = append(m.Vertices, Vertex{Coords: c, Edge: NoEdge, SFitmap: 1})
	return VertexID(len(m.Vertices) - 1)
}

func (m *Mesh) addEdge(origin, dest VertexID) EdgeID {
	m.Edges = append(m.Edges, Edge{
		Origin:      origin,
		Destination: dest,
		FaceLeft:    NoFace,
		FaceRight:   NoFace,
		LeftCW:      NoEdge,
		LeftCCW:     NoEdge,
		RightCW:     NoEdge,
		RightCCW:    NoEdge,
		Reverse:     NoEdge,
	})
	return EdgeID(len(m.Edges) - 1)
}

// addEdgePair creates the half-edge origin->dest in face right along with
// its mirrored twin in face left.
func (m *Mesh) addEdgePair(origin, dest VertexID, right, left FaceID) (EdgeID, EdgeID) {
	e := m.addEdge(origin, dest)
	m.Edges[e].FaceRight = right
	m.Edges[e].FaceLeft = left
	var twin Edge
	m.CreateReversed(e, &twin)
	m.Edges = append(m.Edges, twin)
	r := EdgeID(len(m.Edges) - 1)
	m.Edges[e].Reverse = r
	return e, r
}

func (m *Mesh) addFace() FaceID {
	m.Faces = append(m.Faces, Face{Edge: NoEdge, SFitmap: 1})
	return FaceID(len(m.Faces) - 1)
}

// NumVertices counts the live vertices.
func (m *Mesh) NumVertices() int {
	var n int
	for _, v := range m.Vertices {
		if !v.ToDelete {
			n++
		}
	}
	return n
}

// NumHalfEdges counts the live half-edges.
func (m *Mesh) NumHalfEdges() int {
	var n int
	for _, e := range m.Edges {
		if !e.ToDelete {
			n++
		}
	}
	return n
}

// NumEdges counts the live undirected edges.
func (m *Mesh) NumEdges() int {
	return m.NumHalfEdges() / 2
}

// NumFaces counts the live polygons, excluding hole faces.
func (m *Mesh) NumFaces() int {
	var n int
	for _, f := range m.Faces {
		if !f.ToDelete && !f.Hole {
			n++
		}
	}
	return n
}

// NumHoles counts the boundary loops of the mesh.
func (m *Mesh) NumHoles() int {
	var n int
	for _, f := range m.Faces {
		if !f.ToDelete && f.Hole {
			n++
		}
	}
	return n
}

// HowManyTriangles counts the live triangular polygons.
func (m *Mesh) HowManyTriangles() int {
	var n int
	for _, f := range m.Faces {
		if !f.ToDelete && !f.Hole && f.IsTriangle {
			n++
		}
	}
	return n
}

// EulerCharacteristic computes V - E + F, where F includes hole faces so
// that the result only depends on the topology of the closed-off surface.
func (m *Mesh) EulerCharacteristic() int {
	var faces int
	for _, f := range m.Faces {
		if !f.ToDelete {
			faces++
		}
	}
	return m.NumVertices() - m.NumEdges() + faces
}

// Clean removes every element flagged with ToDelete and renumbers the
// survivors contiguously.
//
// Pending diagonals are discarded, since they refer to the old ids.
func (m *Mesh) Clean() {
	vertexMap := make([]VertexID, len(m.Vertices))
	vertices := make([]Vertex, 0, len(m.Vertices))
	for i, v := range m.Vertices {
		if v.ToDelete {
			vertexMap[i] = NoVertex
			continue
		}
		vertexMap[i] = VertexID(len(vertices))
		vertices = append(vertices, v)
	}

	edgeMap := make([]EdgeID, len(m.Edges))
	edges := make([]Edge, 0, len(m.Edges))
	for i, e := range m.Edges {
		if e.ToDelete {
			edgeMap[i] = NoEdge
			continue
		}
		edgeMap[i] = EdgeID(len(edges))
		edges = append(edges, e)
	}

	faceMap := make([]FaceID, len(m.Faces))
	faces := make([]Face, 0, len(m.Faces))
	for i, f := range m.Faces {
		if f.ToDelete {
			faceMap[i] = NoFace
			continue
		}
		faceMap[i] = FaceID(len(faces))
		faces = append(faces, f)
	}

	mapEdge := func(e EdgeID) EdgeID {
		if e == NoEdge {
			return NoEdge
		}
		return edgeMap[e]
	}
	mapFace := func(f FaceID) FaceID {
		if f == NoFace {
			return NoFace
		}
		return faceMap[f]
	}

	for i := range vertices {
		vertices[i].Edge = mapEdge(vertices[i].Edge)
	}
	for i := range edges {
		e := &edges[i]
		e.Origin = vertexMap[e.Origin]
		e.Destination = vertexMap[e.Destination]
		e.FaceLeft = mapFace(e.FaceLeft)
		e.FaceRight = mapFace(e.FaceRight)
		e.LeftCW = mapEdge(e.LeftCW)
		e.LeftCCW = mapEdge(e.LeftCCW)
		e.RightCW = mapEdge(e.RightCW)
		e.RightCCW = mapEdge(e.RightCCW)
		e.Reverse = mapEdge(e.Reverse)
	}
	for i := range faces {
		f := &faces[i]
		f.Edge = mapEdge(f.Edge)
		f.Diagonal = nil
		f.ToMerge = false
		f.ToUpdate = false
	}

	m.Vertices = vertices
	m.Edges = edges
	m.Faces = faces
	m.diagonals = nil
	m.pending = nil
	m.scheduled = nil
}

// Bounds computes the bounding box of the live vertices.
func (m *Mesh) Bounds() (min, max model3d.Coord3D) {
	first := true
	for _, v := range m.Vertices {
		if v.ToDelete {
			continue
		}
		if first {
			min, max = v.Coords, v.Coords
			first = false
		} else {
			min = min.Min(v.Coords)
			max = max.Max(v.Coords)
		}
	}
	return
}

func (m *Mesh) mustBeCorrect(op string) {
	if err := m.CheckCorrectness(); err != nil {
		panic(op + ": " + err.Error())
	}
}
