// Package texture decodes images into RGBA pixel buffers for GPU upload.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// ErrDecodeFailure is returned when image data cannot be decoded.
// Callers treat it as "no texture".
var ErrDecodeFailure = errors.New("image decode failure")

// Decoder turns encoded image bytes into RGBA pixels.
type Decoder struct {
	// FlipY stores rows bottom-up, matching OpenGL's texture origin.
	FlipY bool
}

// Decode decodes PNG, JPEG, GIF or BMP data.
func (d Decoder) Decode(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data: %w", ErrDecodeFailure)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s image has no pixels: %w", format, ErrDecodeFailure)
	}

	rgba := ToRGBA(img)
	if d.FlipY {
		flipRows(rgba)
	}
	return rgba, nil
}

// Solid returns a 1x1 image of c.
func Solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}

// ToRGBA converts img to a tightly packed *image.RGBA with origin (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*4 {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowSize := img.Bounds().Dx() * 4
	tmp := make([]byte, rowSize)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
