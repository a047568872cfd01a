// Package palette implements the extraction pipeline's public surface:
// ImageData, algorithm/theme selection, swatch aggregation, and the
// Palette/Builder API callers drive.
package palette

import (
	stdimage "image"

	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
)

// ImageData is a decoded, tightly-packed RGBA8 image: len(Data) must equal
// 4*Width*Height. The core never decodes image bytes itself; this is the
// collaborator boundary a PNG/JPEG decoder sits behind.
type ImageData struct {
	Width, Height uint32
	Data          []byte
}

// NewImageData validates that data is exactly 4*width*height bytes.
func NewImageData(width, height uint32, data []byte) (ImageData, error) {
	want := 4 * int(width) * int(height)
	if len(data) != want {
		return ImageData{}, xerrors.New(xerrors.DimensionMismatch, "image data length %d != %d (4*%d*%d)", len(data), want, width, height)
	}
	return ImageData{Width: width, Height: height, Data: data}, nil
}

// FromImage flattens an already-decoded image.Image to RGBA8. This does not
// add a decoding dependency: image.Image is the decoder's *output* type,
// already satisfied by the stdlib image package every Go program importing
// any decoder already depends on.
func FromImage(img stdimage.Image) (ImageData, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]byte, 4*w*h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			data[i] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
			data[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return NewImageData(uint32(w), uint32(h), data)
}

// At returns the RGBA quadruplet for pixel (col, row).
func (d ImageData) At(col, row int) (r, g, b, a uint8) {
	i := 4 * (row*int(d.Width) + col)
	return d.Data[i], d.Data[i+1], d.Data[i+2], d.Data[i+3]
}
