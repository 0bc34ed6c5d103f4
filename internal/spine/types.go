package spine

import "spine-flexion-renderer/internal/mathutil"

// VertebraSpec identifies one vertebra within a scene.
type VertebraSpec struct {
	Index int    `json:"index" yaml:"index"`
	Label string `json:"label" yaml:"label"`
}

// Pose is a vertebra's position and Euler XYZ rotation (radians).
type Pose struct {
	Position mathutil.Vec3 `json:"position" yaml:"position"`
	Rotation mathutil.Vec3 `json:"rotation" yaml:"rotation"`
}

// VertebraState is the render-ready record for one vertebra in one frame.
type VertebraState struct {
	Spec        VertebraSpec `json:"spec" yaml:"spec"`
	Pose        Pose         `json:"pose" yaml:"pose"`
	Highlighted bool         `json:"highlighted" yaml:"highlighted"`
}

// SpineState is the ordered (head to tail) set of vertebra states for a
// single flexion value.
type SpineState struct {
	Flexion   float64         `json:"flexion" yaml:"flexion"`
	Vertebrae []VertebraState `json:"vertebrae" yaml:"vertebrae"`
}

// Cord returns the polyline through the vertebra positions in index order.
// Points are read from the same poses the vertebrae render with.
func (s SpineState) Cord() []mathutil.Vec3 {
	pts := make([]mathutil.Vec3, len(s.Vertebrae))
	for i := range s.Vertebrae {
		pts[i] = s.Vertebrae[i].Pose.Position
	}
	return pts
}

// HighlightedLabels lists the labels of emphasized vertebrae in order.
func (s SpineState) HighlightedLabels() []string {
	var out []string
	for _, v := range s.Vertebrae {
		if v.Highlighted {
			out = append(out, v.Spec.Label)
		}
	}
	return out
}
