package mesh

import "spine-flexion-renderer/internal/mathutil"

// Triangle holds polygon type and vertex indices.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int
}

// Part tags which piece of a vertebra a mesh belongs to. The renderer picks
// material colors from it.
type Part int

const (
	PartBody Part = iota
	PartArch
	PartProcess
)

// Mesh is geometry rigidly attached to one node of the scene graph.
type Mesh struct {
	Verts       []mathutil.Vec3 // local positions, replaced by world positions in ApplyTransforms
	Tris        []Triangle
	Node        int
	Part        Part
	Highlighted bool
}

// Node is one entry of the scene graph. Parent is -1 for roots and must
// otherwise refer to an earlier node.
type Node struct {
	Parent   int
	Position mathutil.Vec3
	Rotation mathutil.Vec3 // Euler XYZ radians
}
