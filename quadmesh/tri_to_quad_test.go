package quadmesh

import (
	"testing"
)

func TestTriToQuadCube(t *testing.T) {
	m := testOBJMesh(t, cubeOBJ)
	if n := m.MarkEdgesForRemoval(); n != 6 {
		t.Fatalf("expected 6 scheduled diagonals but got %d", n)
	}
	for _, e := range m.scheduled {
		if s := m.Edges[e].SumDotProd; s > 1e-8 {
			t.Fatalf("scheduled edge %d has score %f", e, s)
		}
	}
	if n := m.RemoveMarkedEdges(); n != 6 {
		t.Fatalf("expected 6 removed edges but got %d", n)
	}
	m.TriToPureQuad()
	m.Clean()
	testMeshCorrect(t, m)

	if n := m.NumFaces(); n != 6 {
		t.Fatalf("expected 6 faces but got %d", n)
	}
	if n := m.NumVertices(); n != 8 {
		t.Fatalf("expected 8 vertices but got %d", n)
	}
	if n := m.NumEdges(); n != 12 {
		t.Fatalf("expected 12 edges but got %d", n)
	}
	if n := m.NumHalfEdges(); n != 24 {
		t.Fatalf("expected 24 half-edges but got %d", n)
	}
	testAllQuads(t, m)
}

func TestTriToQuadSingleTriangle(t *testing.T) {
	m := testOBJMesh(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	m.TriToQuad()
	testMeshCorrect(t, m)
	if n := m.NumFaces(); n != 1 {
		t.Fatalf("expected 1 face but got %d", n)
	}
	if n := m.NumVertices(); n != 4 {
		t.Fatalf("expected 4 vertices but got %d", n)
	}
	testAllQuads(t, m)
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}

func TestTriToQuadOpenSquare(t *testing.T) {
	m := testOBJMesh(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3\nf 1 3 4\n")
	m.TriToQuad()
	testMeshCorrect(t, m)
	if m.NumFaces() != 1 || m.NumVertices() != 4 || m.NumEdges() != 4 {
		t.Fatalf("unexpected counts: %d %d %d", m.NumFaces(), m.NumVertices(), m.NumEdges())
	}
	testAllQuads(t, m)
}

func TestTriToQuadPrism(t *testing.T) {
	m := testOBJMesh(t, prismOBJ)
	m.TriToQuad()
	testMeshCorrect(t, m)
	if n := m.NumFaces(); n != 4 {
		t.Fatalf("expected 4 faces but got %d", n)
	}
	testAllQuads(t, m)
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}

func TestTriToQuadSphere(t *testing.T) {
	for _, subdivisions := range []int{1, 2, 3} {
		m := testSphere(t, subdivisions)
		euler := m.EulerCharacteristic()
		m.TriToQuad()
		testMeshCorrect(t, m)
		if x := m.EulerCharacteristic(); x != euler {
			t.Fatalf("subdivisions %d: Euler characteristic changed from %d to %d",
				subdivisions, euler, x)
		}
		testAllQuads(t, m)
	}
}

func TestSubdivideTriangle(t *testing.T) {
	m := testOBJMesh(t, cubeOBJ)
	numVertices, numEdges, numFaces := m.NumVertices(), m.NumEdges(), m.NumFaces()
	m.SubdivideTriangle(0)
	testMeshCorrect(t, m)
	if n := m.NumVertices(); n != numVertices+4 {
		t.Fatalf("expected %d vertices but got %d", numVertices+4, n)
	}
	if n := m.NumEdges(); n != numEdges+6 {
		t.Fatalf("expected %d edges but got %d", numEdges+6, n)
	}
	if n := m.NumFaces(); n != numFaces+2 {
		t.Fatalf("expected %d faces but got %d", numFaces+2, n)
	}
	if n := m.faceSize(0); n != 4 {
		t.Fatalf("subdivided face should be a quad but has %d sides", n)
	}
	if n := m.HowManyTriangles(); n != 8 {
		t.Fatalf("expected 8 triangles but got %d", n)
	}
}

func TestToQuadMeshFitmap(t *testing.T) {
	m := testOBJMesh(t, cubeOBJ)
	m.ToQuadMesh(true)
	testAllQuads(t, m)
	for i, f := range m.Faces {
		if f.SFitmap < 1 || f.SFitmap > 2 {
			t.Fatalf("face %d has fitmap %f", i, f.SFitmap)
		}
	}
}

func testAllQuads(t *testing.T, m *Mesh) {
	if n := m.HowManyTriangles(); n != 0 {
		t.Fatalf("expected no triangles but got %d", n)
	}
	for i := range m.Faces {
		f := FaceID(i)
		if m.liveFace(f) && m.faceSize(f) != 4 {
			t.Fatalf("face %d has %d sides", i, m.faceSize(f))
		}
	}
}
