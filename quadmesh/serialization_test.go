package quadmesh

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"
)

func TestReadWriteMesh(t *testing.T) {
	for _, m := range []*Mesh{testCubeQuads(t), testOBJMesh(t, prismOBJ)} {
		var b bytes.Buffer
		if err := WriteMesh(&b, m); err != nil {
			t.Fatal(err)
		}
		result, err := ReadMesh(&b)
		if err != nil {
			t.Fatal(err)
		}
		testMeshCorrect(t, result)
		testMeshesEqual(t, m, result)
	}
}

func TestReadMeshTruncated(t *testing.T) {
	var b bytes.Buffer
	if err := WriteMesh(&b, testCubeQuads(t)); err != nil {
		t.Fatal(err)
	}
	data := b.Bytes()
	if _, err := ReadMesh(bytes.NewReader(data[:len(data)-3])); err == nil {
		t.Fatal("expected an error for truncated data")
	}
}

func TestReadMeshLargeHeader(t *testing.T) {
	var b bytes.Buffer
	header := []uint32{1 << 31, 1 << 31}
	if err := binary.Write(&b, binary.LittleEndian, header); err != nil {
		t.Fatal(err)
	}
	b.Write(make([]byte, 64))
	if _, err := ReadMesh(&b); err == nil {
		t.Fatal("expected an error for a header larger than the data")
	}
}

func TestSaveLoadMesh(t *testing.T) {
	dir := t.TempDir()
	m := testCubeQuads(t)
	for _, name := range []string{"cube.obj", "cube.qmesh"} {
		path := filepath.Join(dir, name)
		if err := SaveMesh(path, m); err != nil {
			t.Fatal(err)
		}
		result, err := LoadMesh(path)
		if err != nil {
			t.Fatal(err)
		}
		testMeshCorrect(t, result)
		testMeshesEqual(t, m, result)
	}

	path := filepath.Join(dir, "cube.stl")
	if err := SaveMesh(path, m); err != nil {
		t.Fatal(err)
	}
	result, err := LoadMesh(path)
	if err != nil {
		t.Fatal(err)
	}
	testMeshCorrect(t, result)
	if n := result.NumVertices(); n != 8 {
		t.Fatalf("expected 8 welded vertices but got %d", n)
	}
	if n := result.NumFaces(); n != 12 {
		t.Fatalf("expected 12 triangles but got %d", n)
	}

	if _, err := LoadMesh(filepath.Join(dir, "missing.obj")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
