package mesh

import "spine-flexion-renderer/internal/mathutil"

// Graph accumulates nodes and the meshes attached to them.
type Graph struct {
	Nodes  []Node
	Meshes []Mesh
}

// AddNode appends a node and returns its index.
func (g *Graph) AddNode(parent int, position, rotation mathutil.Vec3) int {
	g.Nodes = append(g.Nodes, Node{Parent: parent, Position: position, Rotation: rotation})
	return len(g.Nodes) - 1
}

// Attach adds m to the graph under node.
func (g *Graph) Attach(node int, m Mesh) {
	m.Node = node
	g.Meshes = append(g.Meshes, m)
}

// BuildWorldMatrices computes the world transform of every node.
// Returns a slice of 4×4 matrices indexed by node index.
func BuildWorldMatrices(nodes []Node) []mathutil.Mat4 {
	worlds := make([]mathutil.Mat4, len(nodes))
	for i, n := range nodes {
		local := mathutil.Compose(n.Position, n.Rotation)

		// Chain with parent
		if n.Parent >= 0 && n.Parent < i {
			worlds[i] = mathutil.Mat4Mul(worlds[n.Parent], local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// ApplyTransforms moves every mesh vertex into world space in-place.
// Rigid attachment: each mesh follows exactly one node.
func ApplyTransforms(meshes []Mesh, worlds []mathutil.Mat4) {
	for mi := range meshes {
		m := &meshes[mi]
		if m.Node < 0 || m.Node >= len(worlds) {
			continue
		}
		w := worlds[m.Node]
		if w.IsIdentity() {
			continue
		}
		for vi := range m.Verts {
			m.Verts[vi] = w.MulPoint(m.Verts[vi])
		}
	}
}
