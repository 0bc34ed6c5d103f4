package viewmatrix

import (
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// Camera is a perspective camera looking from Position at Target with a
// vertical field of view in degrees.
type Camera struct {
	Position mathutil.Vec3
	Target   mathutil.Vec3
	FOV      float64
	Near     float64
}

// DefaultNear is the near clip distance used when Camera.Near is zero.
const DefaultNear = 0.1

// ViewMatrix returns the world-to-camera transform. The camera looks down
// its local -Z axis with +Y up.
func (c Camera) ViewMatrix() mathutil.Mat4 {
	forward := c.Target.Sub(c.Position).Normalize()
	if forward == (mathutil.Vec3{}) {
		forward = mathutil.Vec3{0, 0, -1}
	}
	up := mathutil.Vec3{0, 1, 0}
	if math.Abs(forward.Dot(up)) > 0.999 {
		up = mathutil.Vec3{0, 0, -1}
	}
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	// Rows of the rotation are the camera axes in world space.
	rot := mathutil.Mat3{
		right[0], right[1], right[2],
		trueUp[0], trueUp[1], trueUp[2],
		-forward[0], -forward[1], -forward[2],
	}
	t := rot.MulVec3(c.Position).Scale(-1)
	return mathutil.FromMat3Translation(rot, t)
}

// ProjectVertices transforms world-space vertices to screen coordinates for
// a width×height viewport. Returns px, py (pixels) and pz, the reciprocal of
// view depth, so a larger pz is closer. Points behind the near plane get
// pz = -Inf and are rejected by the rasterizer's depth test.
func (c Camera) ProjectVertices(verts []mathutil.Vec3, width, height int) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	view := c.ViewMatrix()
	near := c.Near
	if near <= 0 {
		near = DefaultNear
	}
	f := 1 / math.Tan(mathutil.Deg2Rad(c.FOV)/2)
	aspect := float64(width) / float64(height)
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	for i, v := range verts {
		t := view.MulPoint(v)
		depth := -t[2]
		if depth < near {
			px[i], py[i], pz[i] = halfW, halfH, math.Inf(-1)
			continue
		}
		ndcX := (f / aspect) * t[0] / depth
		ndcY := f * t[1] / depth
		px[i] = ndcX*halfW + halfW
		py[i] = -ndcY*halfH + halfH
		pz[i] = 1 / depth
	}

	return px, py, pz
}

// ProjectPoint projects a single world-space point. ok is false when the
// point is behind the camera.
func (c Camera) ProjectPoint(v mathutil.Vec3, width, height int) (x, y float64, ok bool) {
	px, py, pz := c.ProjectVertices([]mathutil.Vec3{v}, width, height)
	return px[0], py[0], !math.IsInf(pz[0], -1)
}
