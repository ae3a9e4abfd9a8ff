package quadmesh

import "github.com/unixpickle/model3d/model3d"

// VertexID, EdgeID and FaceID index into the arenas of a Mesh.
type (
	VertexID int
	EdgeID   int
	FaceID   int
)

const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

// A Vertex is a node of the mesh.
type Vertex struct {
	Coords model3d.Coord3D

	// Edge is one half-edge whose origin is this vertex, or NoEdge for an
	// isolated vertex.
	Edge EdgeID

	ToDelete bool

	// SFitmap and MFitmap are importance scores computed by ComputeFitmap.
	SFitmap float64
	MFitmap float64
}

// An Edge is a directed half-edge.
//
// The half-edge belongs to the boundary ring of FaceRight. RightCW is the
// next edge of that ring and RightCCW the previous one. The left links are
// the mirrored ring links of the reverse edge, so that
// LeftCW == Reverse.RightCW.Reverse and LeftCCW == Reverse.RightCCW.Reverse.
type Edge struct {
	Origin      VertexID
	Destination VertexID

	FaceLeft  FaceID
	FaceRight FaceID

	LeftCW   EdgeID
	LeftCCW  EdgeID
	RightCW  EdgeID
	RightCCW EdgeID

	Reverse EdgeID

	ToDelete bool

	// SumDotProd caches the alignment score used while pairing triangles.
	SumDotProd float64
}

// A Face is a polygon bounded by a ring of half-edges.
type Face struct {
	// Edge is one boundary half-edge with FaceRight equal to this face.
	Edge EdgeID

	IsTriangle bool

	// Hole faces close off the boundary loops of open meshes. They are never
	// exported, merged or collapsed.
	Hole bool

	ToDelete bool
	ToMerge  bool
	ToUpdate bool

	// Diagonal caches the shortest diagonal of a quad.
	Diagonal *Diagonal

	SFitmap float64
	MFitmap float64
}

// A Diagonal is a collapse candidate connecting opposite corners of a quad.
type Diagonal struct {
	Face     FaceID
	V1       VertexID
	V2       VertexID
	Length   float64
	Priority float64
}

// EdgePos classifies an edge relative to the neighbor links of another.
type EdgePos int

const (
	EdgeNone EdgePos = iota
	EdgeLeftCW
	EdgeLeftCCW
	EdgeRightCW
	EdgeRightCCW
)

func (e EdgePos) String() string {
	switch e {
	case EdgeLeftCW:
		return "LeftCW"
	case EdgeLeftCCW:
		return "LeftCCW"
	case EdgeRightCW:
		return "RightCW"
	case EdgeRightCCW:
		return "RightCCW"
	default:
		return "None"
	}
}
