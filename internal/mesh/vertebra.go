package mesh

import (
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// Vertebra proportions, in scene units.
const (
	BodyRadius   = 0.5
	BodyHeight   = 0.4
	BodySegments = 32

	ArchOffset   = 0.4
	RingRadius   = 0.3
	RingTube     = 0.1
	RingRadial   = 8
	RingTubular  = 16
	ProcessWidth = 0.15
	ProcessLen   = 0.6
	ProcessTilt  = -0.5
)

// LabelAnchor is where a vertebra's label sits, in vertebra-local space.
var LabelAnchor = mathutil.Vec3{1.2, 0, 0}

// AddVertebra attaches a simplified vertebra (body, neural arch ring and
// spinous process) under parent at the given pose. It returns the vertebra
// node so callers can place labels relative to it.
func AddVertebra(g *Graph, parent int, position, rotation mathutil.Vec3, highlighted bool) int {
	v := g.AddNode(parent, position, rotation)

	// The cylinder is built along Y; lie it flat so its axis runs front to back.
	body := Cylinder(BodyRadius, BodyHeight, BodySegments)
	body.Part, body.Highlighted = PartBody, highlighted
	g.Attach(g.AddNode(v, mathutil.Vec3{}, mathutil.Vec3{math.Pi / 2, 0, 0}), body)

	arch := g.AddNode(v, mathutil.Vec3{0, 0, ArchOffset}, mathutil.Vec3{})

	ring := Torus(RingRadius, RingTube, RingRadial, RingTubular)
	ring.Part, ring.Highlighted = PartArch, highlighted
	g.Attach(arch, ring)

	process := Box(ProcessWidth, ProcessLen, ProcessWidth)
	process.Part, process.Highlighted = PartProcess, highlighted
	g.Attach(g.AddNode(arch, mathutil.Vec3{0, -0.4, 0.1}, mathutil.Vec3{ProcessTilt, 0, 0}), process)

	return v
}
