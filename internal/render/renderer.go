package render

import (
	"errors"
	"image"
	"image/color"

	"spine-flexion-renderer/internal/mathutil"
	"spine-flexion-renderer/internal/mesh"
	"spine-flexion-renderer/internal/postprocess"
	"spine-flexion-renderer/internal/raster"
	"spine-flexion-renderer/internal/scene"
	"spine-flexion-renderer/internal/texture"
)

// ErrNoSink is returned by Render when no sink is attached.
var ErrNoSink = errors.New("render: no sink attached")

// Sink receives finished frames.
type Sink interface {
	WriteFrame(f scene.Frame, img image.Image) error
}

// Options controls output size and styling.
type Options struct {
	Width       int
	Height      int
	Supersample int
	CordWidth   float64 // in output pixels
	HideLabels  bool
	Palette     Palette

	// Backdrops resolves backdrop images by name. Backdrop names the image;
	// when empty the frame's environment name is tried. With no resolver,
	// or no match, the background stays transparent.
	Backdrops texture.Resolver
	Backdrop  string
}

// DefaultSize is the frame width used when none is configured.
const DefaultSize = 256

// Renderer is a software rasterizer implementing scene.Renderer.
type Renderer struct {
	opts Options
	sink Sink
}

// New returns a renderer writing to sink. Zero option fields get defaults.
func New(opts Options, sink Sink) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultSize
	}
	if opts.Height <= 0 {
		opts.Height = opts.Width
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	if opts.CordWidth <= 0 {
		opts.CordWidth = 2
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}
	return &Renderer{opts: opts, sink: sink}
}

// Render draws f and hands the image to the sink.
func (r *Renderer) Render(f scene.Frame) error {
	if r.sink == nil {
		return ErrNoSink
	}
	return r.sink.WriteFrame(f, r.Image(f))
}

// Image renders f to an NRGBA image of the configured size.
func (r *Renderer) Image(f scene.Frame) *image.NRGBA {
	ss := r.opts.Supersample
	w, h := r.opts.Width*ss, r.opts.Height*ss
	pal := r.opts.Palette
	root := f.Root
	if root == (mathutil.Mat4{}) {
		root = mathutil.Mat4Identity()
	}

	// Scene graph: one root per vertebra, all hung off the frame root.
	var g mesh.Graph
	for _, v := range f.Spine.Vertebrae {
		mesh.AddVertebra(&g, -1, v.Pose.Position, v.Pose.Rotation, v.Highlighted)
	}
	worlds := mesh.BuildWorldMatrices(g.Nodes)
	for i := range worlds {
		worlds[i] = mathutil.Mat4Mul(root, worlds[i])
	}
	mesh.ApplyTransforms(g.Meshes, worlds)

	fb := raster.NewFrameBuffer(w, h)
	lc := lightConfig(f)

	// Rasterize each mesh
	for _, m := range g.Meshes {
		if len(m.Verts) == 0 {
			continue
		}
		px, py, pz := f.Camera.ProjectVertices(m.Verts, w, h)
		base := materialColor(pal, m)

		for _, tri := range m.Tris {
			vi := [3]int{tri.VI[0], tri.VI[1], tri.VI[2]}
			rasterizeFace(fb, m.Verts, px, py, pz, vi, base, &lc)

			// Quad: second triangle
			if tri.Polygon == 4 {
				vi2 := [3]int{tri.VI[0], tri.VI[2], tri.VI[3]}
				rasterizeFace(fb, m.Verts, px, py, pz, vi2, base, &lc)
			}
		}
	}

	// Cord through the vertebra centres, in the scene group's frame.
	cord := f.Spine.Cord()
	for i := range cord {
		cord[i] = root.MulPoint(cord[i])
	}
	cx, cy, cz := f.Camera.ProjectVertices(cord, w, h)
	raster.DrawPolyline(fb, cx, cy, cz, pal.Cord, pal.CordOpacity, r.opts.CordWidth*float64(ss))

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, r.opts.Width, r.opts.Height)
	}

	if !r.opts.HideLabels {
		r.drawLabels(img, f, root)
	}

	return postprocess.Composite(img, r.backdrop(f))
}

func (r *Renderer) drawLabels(img *image.NRGBA, f scene.Frame, root mathutil.Mat4) {
	pal := r.opts.Palette
	for _, v := range f.Spine.Vertebrae {
		world := mathutil.Mat4Mul(root, mathutil.Compose(v.Pose.Position, v.Pose.Rotation))
		x, y, ok := f.Camera.ProjectPoint(world.MulPoint(mesh.LabelAnchor), r.opts.Width, r.opts.Height)
		if !ok {
			continue
		}
		c, opacity := pal.Label, pal.LabelOpacity
		if v.Highlighted {
			c, opacity = pal.LabelHighlight, pal.LabelHighlightOpacity
		}
		raster.DrawLabel(img, v.Spec.Label, int(x), int(y), c, opacity)
	}
}

func (r *Renderer) backdrop(f scene.Frame) *image.NRGBA {
	if r.opts.Backdrops == nil {
		return nil
	}
	name := r.opts.Backdrop
	if name == "" {
		name = f.Lighting.Environment
	}
	if name == "" {
		return nil
	}
	return r.opts.Backdrops.Resolve(name)
}

// rasterizeFace shades one triangle from its world-space normal and fills it.
func rasterizeFace(fb *raster.FrameBuffer, verts []mathutil.Vec3, px, py, pz []float64, vi [3]int, base color.NRGBA, lc *raster.LightConfig) {
	e1 := verts[vi[1]].Sub(verts[vi[0]])
	e2 := verts[vi[2]].Sub(verts[vi[0]])
	n := e1.Cross(e2).Normalize()
	if n == (mathutil.Vec3{}) {
		return
	}
	raster.RasterizeTriangle(fb, px, py, pz, vi, base, lc.Shade(n), lc)
}

func materialColor(pal Palette, m mesh.Mesh) color.NRGBA {
	if m.Part == mesh.PartBody {
		if m.Highlighted {
			return pal.BodyHighlight
		}
		return pal.Body
	}
	if m.Highlighted {
		return pal.ArchHighlight
	}
	return pal.Arch
}

// lightConfig converts the frame's light rig into rasterizer lighting.
func lightConfig(f scene.Frame) raster.LightConfig {
	lc := raster.DefaultLightConfig()
	a := f.Lighting.Ambient
	lc.Ambient = mathutil.Vec3{a, a, a}

	for _, l := range f.Lighting.Lights {
		dir := l.Position.Normalize()
		if dir == (mathutil.Vec3{}) {
			continue
		}
		lc.Lights = append(lc.Lights, raster.DirectionalLight{
			Dir:       dir,
			Color:     raster.Linear(l.Color),
			Intensity: l.Intensity,
		})
	}

	if env, ok := Environments[f.Lighting.Environment]; ok {
		lc.Sky = raster.Linear(env.Sky)
		lc.Ground = raster.Linear(env.Ground)
		lc.Hemi = env.Intensity
	}

	lc.SetView(f.Camera.Target.Sub(f.Camera.Position))
	return lc
}
