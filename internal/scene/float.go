package scene

import (
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// FloatMotion is the idle bob-and-sway applied to a whole scene group.
// It only moves the group; vertebra poses are unaffected.
type FloatMotion struct {
	Speed             float64
	RotationIntensity float64
	FloatIntensity    float64
}

// Transform returns the group's vertical offset and Euler rotation at elapsed.
func (m FloatMotion) Transform(elapsed float64) (offsetY float64, rotation mathutil.Vec3) {
	phase := elapsed / 4 * m.Speed
	s, c := math.Sin(phase), math.Cos(phase)
	rotation = mathutil.Vec3{
		c / 8 * m.RotationIntensity,
		s / 8 * m.RotationIntensity,
		s / 20 * m.RotationIntensity,
	}
	offsetY = s / 10 * m.FloatIntensity
	return offsetY, rotation
}
