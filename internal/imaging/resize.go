package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// DefaultMaxDimension bounds capture size before recognition; phone captures
// routinely exceed this and only slow the engine down.
const DefaultMaxDimension = 1024

// Downscale shrinks an image so that neither side exceeds maxDimension,
// preserving aspect ratio. Images already within the bound are returned
// unchanged. maxDimension <= 0 disables the bound.
func Downscale(img image.Image, maxDimension int) image.Image {
	if maxDimension <= 0 {
		return img
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDimension && height <= maxDimension {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
