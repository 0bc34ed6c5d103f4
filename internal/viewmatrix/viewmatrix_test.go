package viewmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spine-flexion-renderer/internal/mathutil"
)

func TestViewMatrixMovesTargetOntoAxis(t *testing.T) {
	cams := []Camera{
		{Position: mathutil.Vec3{0, 0, 6}, FOV: 40},
		{Position: mathutil.Vec3{4, 0, 0}, FOV: 45},
		{Position: mathutil.Vec3{1, 2, 3}, Target: mathutil.Vec3{0, 0.5, 0}, FOV: 60},
	}
	for _, c := range cams {
		v := c.ViewMatrix().MulPoint(c.Target)
		dist := c.Target.Sub(c.Position).Len()
		assert.InDelta(t, 0.0, v[0], 1e-12)
		assert.InDelta(t, 0.0, v[1], 1e-12)
		assert.InDelta(t, -dist, v[2], 1e-12)
	}
}

func TestProjectTargetToCentre(t *testing.T) {
	c := Camera{Position: mathutil.Vec3{0, 0, 6}, FOV: 40}
	x, y, ok := c.ProjectPoint(mathutil.Vec3{}, 200, 100)
	assert.True(t, ok)
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
}

func TestProjectOrientation(t *testing.T) {
	c := Camera{Position: mathutil.Vec3{0, 0, 6}, FOV: 40}
	px, py, pz := c.ProjectVertices([]mathutil.Vec3{{1, 1, 0}, {0, 0, 1}, {0, 0, -1}}, 100, 100)

	// +X is right and +Y is up on screen.
	assert.Greater(t, px[0], 50.0)
	assert.Less(t, py[0], 50.0)
	// Closer points have a larger pz.
	assert.Greater(t, pz[1], pz[2])
}

func TestProjectBehindCamera(t *testing.T) {
	c := Camera{Position: mathutil.Vec3{0, 0, 6}, FOV: 40}
	_, _, ok := c.ProjectPoint(mathutil.Vec3{0, 0, 10}, 64, 64)
	assert.False(t, ok)
}
