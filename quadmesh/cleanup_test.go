package quadmesh

import "testing"

func TestRemoveDoubletsSpike(t *testing.T) {
	m := testCubeQuads(t)
	f := FaceID(0)
	start := m.Faces[f].Edge
	a, p := m.origin(start), m.prev(start)

	// Splice a dangling edge a->s->a into the ring of f, right before start.
	s := m.addVertex(m.edgeMidpoint(start))
	out, back := m.addEdgePair(a, s, f, f)
	m.Vertices[s].Edge = back
	m.link(p, out)
	m.link(out, back)
	m.link(back, start)
	m.refreshFace(f)

	if n := m.faceSize(f); n != 6 {
		t.Fatalf("expected 6 ring edges but got %d", n)
	}
	if _, ok := m.findSpike(f); !ok {
		t.Fatal("expected a spike")
	}

	if n := m.RemoveDoublets([]FaceID{f}); n != 0 {
		t.Fatalf("expected no removed faces but got %d", n)
	}
	testMeshCorrect(t, m)
	if n := m.faceSize(f); n != 4 {
		t.Fatalf("expected 4 ring edges but got %d", n)
	}
	if !m.Vertices[s].ToDelete {
		t.Fatal("spike vertex should be deleted")
	}
	if !m.Edges[out].ToDelete || !m.Edges[back].ToDelete {
		t.Fatal("spike edges should be deleted")
	}
	if !m.Faces[f].ToUpdate {
		t.Fatal("repaired face should be flagged for update")
	}

	m.Clean()
	testMeshCorrect(t, m)
	if n := m.NumVertices(); n != 8 {
		t.Fatalf("expected 8 vertices but got %d", n)
	}
	if n := m.NumEdges(); n != 12 {
		t.Fatalf("expected 12 edges but got %d", n)
	}
}

func TestRemoveDoubletsTwoGon(t *testing.T) {
	m := testCubeQuads(t)
	f := FaceID(0)
	e := m.Faces[f].Edge
	a, b := m.origin(e), m.dest(e)
	h := m.Edges[e].FaceLeft
	p, n := m.prev(e), m.next(e)

	// Double the edge a-b, so that e and the new b->a edge bound a face
	// of their own.
	g := m.addFace()
	inner, outer := m.addEdgePair(a, b, f, g)
	m.link(p, inner)
	m.link(inner, n)
	m.link(e, outer)
	m.link(outer, e)
	m.setFace(e, g)
	m.Faces[f].Edge = inner
	m.Faces[g].Edge = e
	m.refreshFace(f)
	m.refreshFace(g)

	if n := m.faceSize(g); n != 2 {
		t.Fatalf("expected a two-sided face but got %d sides", n)
	}

	if n := m.RemoveDoublets([]FaceID{g}); n != 1 {
		t.Fatalf("expected 1 removed face but got %d", n)
	}
	testMeshCorrect(t, m)
	if !m.Faces[g].ToDelete {
		t.Fatal("two-sided face should be deleted")
	}
	if !m.Edges[e].ToDelete || !m.Edges[outer].ToDelete {
		t.Fatal("two-sided face edges should be deleted")
	}
	if m.rev(inner) != m.EdgeBetween(h, f) {
		t.Fatal("faces on either side should become adjacent")
	}
	if m.origin(inner) != a || m.dest(inner) != b {
		t.Fatal("surviving edge has the wrong endpoints")
	}
	for _, x := range []FaceID{f, h} {
		if !m.Faces[x].ToUpdate {
			t.Fatalf("neighbor %d should be flagged for update", x)
		}
	}

	m.Clean()
	testMeshCorrect(t, m)
	if n := m.NumFaces(); n != 6 {
		t.Fatalf("expected 6 faces but got %d", n)
	}
	if n := m.NumEdges(); n != 12 {
		t.Fatalf("expected 12 edges but got %d", n)
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}
