package spine

// IsHighlighted reports whether vertebra index is emphasized at flexion.
// Only the cranial HighlightSegments vertebrae qualify, and only once the
// posture is past the midpoint toward flexed (strictly).
func IsHighlighted(index, total int, flexion float64) bool {
	return index < HighlightSegments && flexion > HighlightThreshold
}
