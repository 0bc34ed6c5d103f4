package spine

import "math"

// Curve coefficients. These are illustrative approximations of the
// cervical curve, tuned by eye, not fitted to measured data.
const (
	// StackTop is the height of the most cranial vertebra.
	StackTop = 2.5
	// StackStep is the vertical spacing between consecutive vertebrae.
	StackStep = 0.7

	// NeutralDepth scales the half-sine arc of the lordotic curve. Negative
	// so the arc opens posteriorly.
	NeutralDepth = -0.5
	// NeutralTilt is the per-segment pitch around the middle of the column.
	NeutralTilt = -0.15

	// FlexedReach is the forward displacement at t=1 of the quadratic
	// text-neck profile.
	FlexedReach = 1.5
	// FlexedTiltRange and FlexedTiltBase define the progressive forward
	// pitch tilt = t*FlexedTiltRange + FlexedTiltBase.
	FlexedTiltRange = 0.8
	FlexedTiltBase  = 0.2

	// FacingYaw turns every vertebra to face the viewer. It is fixed per
	// scene and never depends on flexion.
	FacingYaw = math.Pi
)

// Oscillation of the flexion driver.
const (
	// OscillationRate is the angular frequency (rad/s) of the flexion cycle.
	OscillationRate = 0.5
	// Period is the fundamental period of FlexionAt in seconds (4π).
	Period = 2 * math.Pi / OscillationRate
)

// Highlight rule.
const (
	// HighlightSegments is how many cranial vertebrae can be emphasized.
	// They cover the segments FM–C2 through C3–4.
	HighlightSegments = 4
	// HighlightThreshold is the flexion that must be strictly exceeded.
	HighlightThreshold = 0.5
)
