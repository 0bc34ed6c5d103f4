package mesh

import (
	"math"

	"spine-flexion-renderer/internal/mathutil"
)

// Cylinder builds a capped cylinder centred on the origin along the Y axis.
func Cylinder(radius, height float64, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	half := height / 2
	var m Mesh

	// Ring vertices: top ring [0, segments), bottom ring [segments, 2*segments).
	for _, y := range []float64{half, -half} {
		for i := 0; i < segments; i++ {
			theta := float64(i) / float64(segments) * 2 * math.Pi
			m.Verts = append(m.Verts, mathutil.Vec3{radius * math.Sin(theta), y, radius * math.Cos(theta)})
		}
	}
	topCenter := len(m.Verts)
	m.Verts = append(m.Verts, mathutil.Vec3{0, half, 0})
	bottomCenter := len(m.Verts)
	m.Verts = append(m.Verts, mathutil.Vec3{0, -half, 0})

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		m.Tris = append(m.Tris,
			Triangle{Polygon: 4, VI: [4]int{i, segments + i, segments + next, next}},
			Triangle{Polygon: 3, VI: [4]int{topCenter, i, next}},
			Triangle{Polygon: 3, VI: [4]int{bottomCenter, segments + next, segments + i}},
		)
	}
	return m
}

// Torus builds a ring in the XY plane around the Z axis.
func Torus(radius, tube float64, radialSegments, tubularSegments int) Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}
	var m Mesh
	for j := 0; j < radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i < tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			r := radius + tube*math.Cos(v)
			m.Verts = append(m.Verts, mathutil.Vec3{r * math.Cos(u), r * math.Sin(u), tube * math.Sin(v)})
		}
	}

	idx := func(j, i int) int {
		return (j%radialSegments)*tubularSegments + i%tubularSegments
	}
	for j := 0; j < radialSegments; j++ {
		for i := 0; i < tubularSegments; i++ {
			m.Tris = append(m.Tris, Triangle{Polygon: 4, VI: [4]int{
				idx(j, i), idx(j+1, i), idx(j+1, i+1), idx(j, i+1),
			}})
		}
	}
	return m
}

// Box builds an axis-aligned box centred on the origin.
func Box(width, height, depth float64) Mesh {
	x, y, z := width/2, height/2, depth/2
	m := Mesh{
		Verts: []mathutil.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
	}
	faces := [][4]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
		{3, 7, 6, 2}, // top
		{0, 1, 5, 4}, // bottom
	}
	for _, f := range faces {
		m.Tris = append(m.Tris, Triangle{Polygon: 4, VI: f})
	}
	return m
}
