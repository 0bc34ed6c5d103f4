package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"spine-flexion-renderer/internal/scene"
)

// FrameName is the file name of frame index inside a scene directory.
func FrameName(index int) string {
	return fmt.Sprintf("frame_%04d.webp", index)
}

// FileSink writes each frame as lossless WebP under Dir/<scene>/.
type FileSink struct {
	Dir string
}

// Path returns where f is written.
func (s FileSink) Path(f scene.Frame) string {
	return filepath.Join(s.Dir, f.Scene, FrameName(f.Index))
}

// WriteFrame encodes img to the frame's path.
func (s FileSink) WriteFrame(f scene.Frame, img image.Image) error {
	outPath := s.Path(f)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(out, img, nil); err != nil {
		out.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	return out.Close()
}
