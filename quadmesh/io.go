package quadmesh

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Load opens the file at path and decodes it with f.
func Load[T any](path string, f func(r io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer r.Close()
	return f(r)
}

// Save creates the file at path and encodes obj into it with f.
func Save[T any](path string, obj T, f func(w io.Writer, obj T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	if err := f(w, obj); err != nil {
		w.Close()
		return err
	}
	return errors.Wrap(w.Close(), "save")
}

// LoadMesh reads a mesh from an OBJ, STL or binary mesh file, chosen by
// the file extension.
func LoadMesh(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		tris, err := Load(path, model3d.ReadSTL)
		if err != nil {
			return nil, err
		}
		return FromModel3D(model3d.NewMeshTriangles(tris))
	case ".qmesh":
		return Load(path, ReadMesh)
	default:
		return Load(path, ReadOBJ)
	}
}

// SaveMesh writes m as an OBJ, STL or binary mesh file, chosen by the file
// extension.
func SaveMesh(path string, m *Mesh) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return m.Model3D().SaveGroupedSTL(path)
	case ".qmesh":
		return Save(path, m, WriteMesh)
	default:
		return Save(path, m, WriteOBJ)
	}
}
