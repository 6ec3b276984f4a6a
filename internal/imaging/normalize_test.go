package imaging

import (
	"image"
	"image/color"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x * 37) % 256),
				G: uint8((y * 91) % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestNormalizePreservesDimensions(t *testing.T) {
	src := testImage(12, 7)
	out := Normalize(src)

	if out.Bounds().Dx() != 12 || out.Bounds().Dy() != 7 {
		t.Fatalf("unexpected bounds: %v", out.Bounds())
	}
}

func TestNormalizeProducesGrayscaleInRGB(t *testing.T) {
	src := testImage(8, 8)
	out := Normalize(src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := out.RGBAAt(x, y)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("channels differ at (%d,%d): %+v", x, y, c)
			}
			if c.A != 255 {
				t.Fatalf("alpha not opaque at (%d,%d): %d", x, y, c.A)
			}
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	src := testImage(10, 10)
	a := Normalize(src)
	b := Normalize(src)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs between runs: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestNormalizeMidGrayFixedPoint(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	out := Normalize(src)
	if c := out.RGBAAt(0, 0); c.R != 128 {
		t.Fatalf("mid gray should be unchanged by the stretch, got %d", c.R)
	}
}

func TestNormalizeOfNormalizedStaysValid(t *testing.T) {
	src := testImage(9, 5)
	once := Normalize(src)
	twice := Normalize(once)

	if twice.Bounds() != once.Bounds() {
		t.Fatalf("second application changed bounds: %v vs %v", twice.Bounds(), once.Bounds())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			c := twice.RGBAAt(x, y)
			if c.R != c.G || c.G != c.B || c.A != 255 {
				t.Fatalf("invalid pixel after double normalization at (%d,%d): %+v", x, y, c)
			}
		}
	}
}

func TestDownscaleBoundsLargeImages(t *testing.T) {
	src := testImage(400, 100)
	out := Downscale(src, 200)

	if out.Bounds().Dx() != 200 {
		t.Fatalf("width not bounded: %d", out.Bounds().Dx())
	}
	if out.Bounds().Dy() != 50 {
		t.Fatalf("aspect ratio not preserved: %d", out.Bounds().Dy())
	}
}

func TestDownscaleLeavesSmallImagesAlone(t *testing.T) {
	src := testImage(100, 60)
	if out := Downscale(src, 200); out != image.Image(src) {
		t.Fatal("image within bound should be returned unchanged")
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	data, err := EncodePNG(testImage(6, 6))
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 6 {
		t.Fatalf("unexpected bounds after round trip: %v", img.Bounds())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
