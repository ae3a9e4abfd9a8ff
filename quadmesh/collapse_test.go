package quadmesh

import (
	"testing"
)

func TestCreateDiagonal(t *testing.T) {
	m := testCubeQuads(t)
	for i := range m.Faces {
		f := FaceID(i)
		d := m.CreateDiagonal(f)
		if d == nil {
			t.Fatalf("face %d should have a diagonal", i)
		}
		if m.Faces[f].Diagonal != d {
			t.Fatalf("face %d does not cache its diagonal", i)
		}
		if m.OppositeVertex(f, d.V1) != d.V2 {
			t.Fatalf("face %d: diagonal endpoints are not opposite", i)
		}
		if d.Priority != d.Length {
			t.Fatalf("face %d: unweighted priority %f differs from length %f", i, d.Priority, d.Length)
		}
	}

	tri := testOBJMesh(t, cubeOBJ)
	if d := tri.CreateDiagonal(0); d != nil {
		t.Fatal("triangles should not have diagonals")
	}
}

func TestDiagonalCollapseCube(t *testing.T) {
	m := testCubeQuads(t)
	m.InitDiagonals(false)
	before := m.NumFaces()
	removed, ok := m.DiagonalCollapse()
	if !ok {
		t.Fatal("expected a collapse")
	}
	testMeshCorrect(t, m)
	if removed < 1 {
		t.Fatalf("collapse removed %d faces", removed)
	}
	if n := m.NumFaces(); n != before-removed {
		t.Fatalf("expected %d faces but got %d", before-removed, n)
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}

func TestDiagonalCollapseSphere(t *testing.T) {
	for _, fitmap := range []bool{false, true} {
		m := testSphere(t, 3)
		m.TriToQuad()
		if fitmap {
			m.ComputeFitmap()
		}
		m.InitDiagonals(fitmap)
		for i := 0; i < 20; i++ {
			before := m.NumFaces()
			removed, ok := m.DiagonalCollapse()
			if !ok {
				t.Fatalf("collapse %d failed", i)
			}
			if removed < 1 {
				t.Fatalf("collapse %d removed %d faces", i, removed)
			}
			if n := m.NumFaces(); n != before-removed {
				t.Fatalf("collapse %d: expected %d faces but got %d", i, before-removed, n)
			}
			if x := m.EulerCharacteristic(); x != 2 {
				t.Fatalf("collapse %d: unexpected Euler characteristic: %d", i, x)
			}
			testNoDegenerateFaces(t, m)
		}
	}
}

func TestDecimate(t *testing.T) {
	m := testSphere(t, 3)
	m.TriToQuad()
	before := m.NumFaces()
	target := before / 2
	if n := m.Decimate(target, false); n == 0 {
		t.Fatal("no collapses were performed")
	}
	testMeshCorrect(t, m)
	if n := m.NumFaces(); n >= before {
		t.Fatalf("face count did not decrease: %d -> %d", before, n)
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
	testNoDegenerateFaces(t, m)
}

// Four quads spanning the poles 1 and 2, like the panels of a beach ball.
// Every pair of panels shares both poles.
const beachBallOBJ = `v 0 0 2
v 0 0 -2
v 1 0 0
v 0 1 0
v -1 0 0
v 0 -1 0
f 1 3 2 4
f 1 4 2 5
f 1 5 2 6
f 1 6 2 3
`

func TestCollapseTargetRedirect(t *testing.T) {
	m := testOBJMesh(t, beachBallOBJ)
	d := &Diagonal{Face: 0, V1: 0, V2: 1, Length: 4, Priority: 4}
	if m.canCollapse(d) {
		t.Fatal("poles share other faces and should not collapse")
	}

	target := m.collapseTarget(d)
	if target == nil {
		t.Fatal("expected the collapse to be redirected")
	}
	if target == d || target.Face == d.Face {
		t.Fatalf("expected a diagonal of another face but got face %d", target.Face)
	}
	if m.Faces[target.Face].Diagonal != target {
		t.Fatal("redirected diagonal should be cached on its face")
	}
	for _, v := range []VertexID{target.V1, target.V2} {
		if v == 0 || v == 1 {
			t.Fatalf("redirected diagonal should join equator vertices, got %d", v)
		}
	}
	if m.OppositeVertex(target.Face, target.V1) != target.V2 {
		t.Fatal("redirected diagonal endpoints are not opposite")
	}
	if !m.canCollapse(target) {
		t.Fatal("redirected diagonal should be collapsible")
	}

	// Merging two equator vertices leaves three panels, which cleanup
	// reduces to a two-quad pillow.
	if removed := m.collapse(target); removed != 2 {
		t.Fatalf("expected 2 removed faces but got %d", removed)
	}
	testMeshCorrect(t, m)
	if n := m.NumFaces(); n != 2 {
		t.Fatalf("expected 2 faces but got %d", n)
	}
	if n := m.NumVertices(); n != 4 {
		t.Fatalf("expected 4 vertices but got %d", n)
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}

	blocked := testOBJMesh(t, beachBallOBJ)
	for i := range blocked.Faces {
		blocked.Faces[i].Diagonal = &Diagonal{Face: FaceID(i), V1: 0, V2: 1}
	}
	if target := blocked.collapseTarget(&Diagonal{Face: 0, V1: 0, V2: 1}); target != nil {
		t.Fatalf("expected no target when every face diagonal is blocked, got face %d", target.Face)
	}
}

func TestRemoveDoublets(t *testing.T) {
	m := testSphere(t, 2)
	m.TriToQuad()
	e := m.Faces[0].Edge
	f1, f2 := m.face(e), m.Edges[e].FaceLeft
	v := m.splitEdge(e, m.edgeMidpoint(e))
	if _, _, ok := m.findDoublet(f1); !ok {
		t.Fatal("expected a doublet after splitting an edge")
	}
	if n := m.RemoveDoublets([]FaceID{f1}); n < 1 {
		t.Fatalf("expected at least 1 removed face but got %d", n)
	}
	testMeshCorrect(t, m)
	if !m.Vertices[v].ToDelete {
		t.Fatal("degree two vertex should be deleted")
	}
	if !m.Faces[f1].ToDelete && !m.Faces[f2].ToDelete && m.NumSharedEdges(f1, f2) > 0 {
		t.Fatal("doublet faces should be merged")
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}

func testNoDegenerateFaces(t *testing.T, m *Mesh) {
	for i := range m.Faces {
		f := FaceID(i)
		if !m.liveFace(f) {
			continue
		}
		if _, _, ok := m.findDoublet(f); ok {
			t.Fatalf("face %d has a doublet", i)
		}
		if _, ok := m.findSpike(f); ok {
			t.Fatalf("face %d has a spike", i)
		}
		if m.IsSinglet(f) {
			t.Fatalf("face %d is a singlet", i)
		}
	}
}
