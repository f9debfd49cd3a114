package window

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/roonium/internal/engine/texture"
)

// SetIcon sets the window icon from img.
func (w *Window) SetIcon(img image.Image) error {
	rgba := texture.ToRGBA(img)
	b := rgba.Bounds()
	if b.Empty() {
		return fmt.Errorf("empty icon")
	}

	// RGBA bytes in memory are ABGR8888 in SDL's packed naming.
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(b.Dx()),
		int32(b.Dy()),
		32,
		int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return fmt.Errorf("creating icon surface: %w", err)
	}
	defer surface.Free()

	w.sdlWindow.SetIcon(surface)
	return nil
}
