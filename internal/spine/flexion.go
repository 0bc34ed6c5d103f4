package spine

import (
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// FlexionAt maps elapsed seconds to a flexion in [0, 1]. It depends only on
// its argument, so frame-rate jitter never accumulates. FlexionAt(0) is 0.5.
func FlexionAt(elapsed float64) float64 {
	return (math.Sin(elapsed*OscillationRate) + 1) / 2
}

// ClampFlexion restricts f to [0, 1]. NaN becomes 0.
func ClampFlexion(f float64) float64 {
	return mathutil.Clamp(f, 0, 1)
}
