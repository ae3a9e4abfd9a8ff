package quadmesh

import "fmt"

// A ViolationKind classifies a broken mesh invariant.
type ViolationKind int

const (
	// DanglingReference is a link to a deleted or out-of-range element.
	DanglingReference ViolationKind = iota

	// ReverseMismatch is a half-edge whose twin is not its mirror image.
	ReverseMismatch

	// NeighborMismatch is a left-side link that disagrees with the twin's
	// ring.
	NeighborMismatch

	// RingMismatch is a broken next/previous link in a face ring.
	RingMismatch

	// DuplicateRingEdge is a face ring visiting a half-edge twice.
	DuplicateRingEdge

	// VertexMismatch is a vertex whose star does not close around it.
	VertexMismatch

	// FaceMismatch is a face whose ring or flags disagree with its edges.
	FaceMismatch
)

func (v ViolationKind) String() string {
	switch v {
	case DanglingReference:
		return "dangling reference"
	case ReverseMismatch:
		return "reverse mismatch"
	case NeighborMismatch:
		return "neighbor mismatch"
	case RingMismatch:
		return "ring mismatch"
	case DuplicateRingEdge:
		return "duplicate ring edge"
	case VertexMismatch:
		return "vertex mismatch"
	case FaceMismatch:
		return "face mismatch"
	}
	return fmt.Sprintf("ViolationKind(%d)", int(v))
}

// A Violation describes the first broken invariant found by
// CheckCorrectness. ID is the index of the offending element.
type Violation struct {
	Kind   ViolationKind
	ID     int
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s at %d: %s", v.Kind, v.ID, v.Detail)
}

// CheckCorrectness verifies the combinatorial invariants of every live
// element and returns a *Violation for the first one that fails.
func (m *Mesh) CheckCorrectness() error {
	validV := func(v VertexID) bool {
		return v >= 0 && int(v) < len(m.Vertices) && !m.Vertices[v].ToDelete
	}
	validE := func(e EdgeID) bool {
		return e >= 0 && int(e) < len(m.Edges) && !m.Edges[e].ToDelete
	}
	validF := func(f FaceID) bool {
		return f >= 0 && int(f) < len(m.Faces) && !m.Faces[f].ToDelete
	}

	var liveEdges int
	for i := range m.Edges {
		e := EdgeID(i)
		edge := &m.Edges[i]
		if edge.ToDelete {
			continue
		}
		liveEdges++
		if !validV(edge.Origin) || !validV(edge.Destination) {
			return &Violation{DanglingReference, i, "endpoint is not a live vertex"}
		}
		if !validF(edge.FaceLeft) || !validF(edge.FaceRight) {
			return &Violation{DanglingReference, i, "face is not live"}
		}
		for _, x := range []EdgeID{edge.Reverse, edge.LeftCW, edge.LeftCCW, edge.RightCW, edge.RightCCW} {
			if !validE(x) {
				return &Violation{DanglingReference, i, fmt.Sprintf("link to edge %d", x)}
			}
		}

		r := &m.Edges[edge.Reverse]
		if edge.Reverse == e || r.Reverse != e {
			return &Violation{ReverseMismatch, i, "reverse is not an involution"}
		}
		if edge.Origin != r.Destination || edge.Destination != r.Origin {
			return &Violation{ReverseMismatch, i, "reverse endpoints are not swapped"}
		}
		if edge.FaceLeft != r.FaceRight || edge.FaceRight != r.FaceLeft {
			return &Violation{ReverseMismatch, i, "reverse faces are not swapped"}
		}
		if edge.Origin == edge.Destination {
			return &Violation{ReverseMismatch, i, "edge is a loop"}
		}

		rev := func(x EdgeID) EdgeID { return m.Edges[x].Reverse }
		if edge.LeftCW != rev(r.RightCW) || edge.LeftCCW != rev(r.RightCCW) ||
			edge.RightCW != rev(r.LeftCW) || edge.RightCCW != rev(r.LeftCCW) {
			return &Violation{NeighborMismatch, i, "links disagree with reverse"}
		}

		next := &m.Edges[edge.RightCW]
		if next.RightCCW != e {
			return &Violation{RingMismatch, i, "next edge does not point back"}
		}
		if next.Origin != edge.Destination {
			return &Violation{RingMismatch, i, "next edge does not start at destination"}
		}
		if next.FaceRight != edge.FaceRight {
			return &Violation{RingMismatch, i, "next edge is in another face"}
		}
	}

	var ringEdges int
	for i := range m.Faces {
		f := FaceID(i)
		face := &m.Faces[i]
		if face.ToDelete {
			continue
		}
		if !validE(face.Edge) {
			return &Violation{DanglingReference, i, "face edge is not live"}
		}
		seen := map[EdgeID]bool{}
		e := face.Edge
		for {
			if m.Edges[e].FaceRight != f {
				return &Violation{FaceMismatch, i, fmt.Sprintf("ring edge %d has another face", e)}
			}
			if seen[e] {
				return &Violation{DuplicateRingEdge, i, fmt.Sprintf("edge %d", e)}
			}
			seen[e] = true
			e = m.Edges[e].RightCW
			if e == face.Edge {
				break
			}
		}
		ringEdges += len(seen)
		if !face.Hole {
			if len(seen) < 3 {
				return &Violation{FaceMismatch, i, fmt.Sprintf("polygon has %d sides", len(seen))}
			}
			if face.IsTriangle != (len(seen) == 3) {
				return &Violation{FaceMismatch, i, "stale triangle flag"}
			}
		}
	}
	if ringEdges != liveEdges {
		return &Violation{RingMismatch, -1, fmt.Sprintf("%d of %d edges are on face rings", ringEdges, liveEdges)}
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		if v.ToDelete || v.Edge == NoEdge {
			continue
		}
		if !validE(v.Edge) || m.Edges[v.Edge].Origin != VertexID(i) {
			return &Violation{VertexMismatch, i, "vertex edge does not leave the vertex"}
		}
		e := v.Edge
		for n := 0; ; n++ {
			if n > liveEdges {
				return &Violation{VertexMismatch, i, "vertex star does not close"}
			}
			e = m.Edges[m.Edges[e].Reverse].RightCW
			if m.Edges[e].Origin != VertexID(i) {
				return &Violation{VertexMismatch, i, fmt.Sprintf("star edge %d leaves another vertex", e)}
			}
			if e == v.Edge {
				break
			}
		}
	}
	return nil
}
