package quadmesh

import "testing"

// A triangle tucked into a notch of a quad, so that the two share the pair
// of edges around the degree two vertex 3. A second triangle borders the
// quad on the other side.
const notchOBJ = `v 0 0 0
v 2 0 0
v 1 1 0
v 1 3 0
v 3 3 0
f 1 3 2
f 2 3 1 4
f 2 4 5
`

// Two triangles glued along both edges around vertex 1.
const pillowOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
f 1 3 2
`

func TestTriToPureQuadNotch(t *testing.T) {
	m := testOBJMesh(t, notchOBJ)
	if n := m.NumSharedEdges(0, 1); n != 2 {
		t.Fatalf("expected 2 shared edges but got %d", n)
	}
	if n := m.Degree(2); n != 2 {
		t.Fatalf("expected notch degree 2 but got %d", n)
	}

	m.TriToPureQuad()
	testMeshCorrect(t, m)
	if n := m.HowManyTriangles(); n != 0 {
		t.Fatalf("expected no triangles but got %d", n)
	}
	if !m.Vertices[2].ToDelete {
		t.Fatal("notch vertex should be deleted")
	}

	m.Clean()
	testMeshCorrect(t, m)
	if n := m.NumFaces(); n != 1 {
		t.Fatalf("expected 1 face but got %d", n)
	}
	if n := m.NumVertices(); n != 4 {
		t.Fatalf("expected 4 vertices but got %d", n)
	}
	if n := m.NumEdges(); n != 4 {
		t.Fatalf("expected 4 edges but got %d", n)
	}
	if n := m.NumHoles(); n != 1 {
		t.Fatalf("expected 1 hole but got %d", n)
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}

func TestMergeTrianglePairDoublet(t *testing.T) {
	// Two quads around the degree two vertex 1. Cutting each one from 0 to
	// 2 leaves two triangles sharing both edges at vertex 1, bordered by
	// two other faces.
	m := testOBJMesh(t, `v 0 0 0
v 1 0.2 0
v 2 0 0
v 2 2 0
v 0 2 0
v 1 -2 0
f 1 2 3 4 5
f 3 2 1 6
`)
	m.splitFace(0, 0, 2)
	m.splitFace(1, 2, 0)
	testMeshCorrect(t, m)
	if !m.Faces[0].IsTriangle || !m.Faces[1].IsTriangle {
		t.Fatal("expected two triangles")
	}
	if n := m.NumSharedEdges(0, 1); n != 2 {
		t.Fatalf("expected 2 shared edges but got %d", n)
	}
	if n := m.HowManyTriangles(); n != 3 {
		t.Fatalf("expected 3 triangles but got %d", n)
	}

	m.mergeTrianglePair(0, 1)
	testMeshCorrect(t, m)
	if !m.Faces[0].ToDelete || !m.Faces[1].ToDelete {
		t.Fatal("both triangles should be dissolved")
	}
	if !m.Vertices[1].ToDelete {
		t.Fatal("shared degree two vertex should be deleted")
	}
	if n := m.NumFaces(); n != 2 {
		t.Fatalf("expected 2 faces but got %d", n)
	}
	if n := m.HowManyTriangles(); n != 1 {
		t.Fatalf("expected 1 triangle but got %d", n)
	}
	if x := m.EulerCharacteristic(); x != 2 {
		t.Fatalf("unexpected Euler characteristic: %d", x)
	}
}

func TestMergeTrianglePairFallback(t *testing.T) {
	t.Run("Pillow", func(t *testing.T) {
		m := testOBJMesh(t, pillowOBJ)
		if n := m.NumSharedEdges(0, 1); n != 3 {
			t.Fatalf("expected 3 shared edges but got %d", n)
		}
		m.mergeTrianglePair(0, 1)
		testMeshCorrect(t, m)
		if n := m.HowManyTriangles(); n != 0 {
			t.Fatalf("expected no triangles but got %d", n)
		}
		if n := m.NumFaces(); n != 4 {
			t.Fatalf("expected 4 faces but got %d", n)
		}
		if n := m.MaxFaceSize(); n != 6 {
			t.Fatalf("expected a hexagon but got max face size %d", n)
		}
		if x := m.EulerCharacteristic(); x != 2 {
			t.Fatalf("unexpected Euler characteristic: %d", x)
		}
	})
	t.Run("Disjoint", func(t *testing.T) {
		m := testOBJMesh(t, cubeOBJ)
		if n := m.NumSharedEdges(0, 2); n != 0 {
			t.Fatalf("expected no shared edges but got %d", n)
		}
		m.mergeTrianglePair(0, 2)
		testMeshCorrect(t, m)
		if m.Faces[0].IsTriangle {
			t.Fatal("first triangle should be subdivided")
		}
		if !m.Faces[2].IsTriangle {
			t.Fatal("second triangle should be untouched")
		}
		if n := m.HowManyTriangles(); n != 8 {
			t.Fatalf("expected 8 triangles but got %d", n)
		}
		if x := m.EulerCharacteristic(); x != 2 {
			t.Fatalf("unexpected Euler characteristic: %d", x)
		}
	})
}
