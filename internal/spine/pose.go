package spine

import (
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// PoseAt returns the pose of vertebra index in a column of total vertebrae
// at the given flexion. It is pure. total must be positive and flexion
// already clamped to [0, 1]; PoseAt itself does neither check.
func PoseAt(index, total int, flexion float64) Pose {
	i := float64(index)
	t := 0.0
	if total > 1 {
		t = i / float64(total-1)
	}

	y := StackTop - i*StackStep

	// Lordosis: a half-sine arc opening posteriorly.
	neutralZ := math.Sin(t*math.Pi) * NeutralDepth
	neutralRotX := (i - float64(total-1)/2) * NeutralTilt

	// Text neck: quadratic forward reach with progressive pitch.
	flexedZ := math.Pow(t, 2) * FlexedReach
	flexedRotX := t*FlexedTiltRange + FlexedTiltBase

	z := mathutil.Lerp(neutralZ, flexedZ, flexion)
	rotX := mathutil.Lerp(neutralRotX, flexedRotX, flexion)

	return Pose{
		Position: mathutil.Vec3{0, y, z},
		Rotation: mathutil.Vec3{rotX, FacingYaw, 0},
	}
}
