package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"
)

// ContrastFactor is the fixed contrast-stretch parameter applied before
// recognition.
const ContrastFactor = 1.5

// contrastGain precomputes the stretch coefficient for ContrastFactor using
// the standard 259-based contrast formula.
var contrastGain = (259 * (ContrastFactor*255 + 255)) / (255 * (259 - ContrastFactor*255))

// Normalize converts the image to grayscale-in-RGB and applies the fixed
// contrast stretch. It is deterministic, performs no I/O and always succeeds
// on a well-formed image: the result has the same dimensions as the input and
// remains a valid color image with all three channels equal.
func Normalize(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Luminance as the plain channel average, 16-bit down to 8-bit.
			lum := float64((r>>8)+(g>>8)+(b>>8)) / 3.0
			v := clampByte(contrastGain*(lum-128) + 128)
			out.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Decode decodes an encoded capture (PNG, JPEG or GIF) into an image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG for handoff to the recognition engine.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
