package barcode

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

func blankImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func matrixImage(m *gozxing.BitMatrix) image.Image {
	img := image.NewGray(image.Rect(0, 0, m.GetWidth(), m.GetHeight()))
	for y := 0; y < m.GetHeight(); y++ {
		for x := 0; x < m.GetWidth(); x++ {
			if m.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestDecodeNoSymbolIsNotAnError(t *testing.T) {
	result, err := NewDecoder().Decode(blankImage(200, 200))

	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}
	if !errors.Is(err, ErrNoSymbol) {
		t.Fatalf("expected ErrNoSymbol, got %v", err)
	}
}

func TestDecodeQRSymbol(t *testing.T) {
	matrix, err := qrcode.NewQRCodeWriter().Encode(
		"5601234567890", gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	result, err := NewDecoder().Decode(matrixImage(matrix))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if result.Text != "5601234567890" {
		t.Errorf("text = %q", result.Text)
	}
	if result.Format != domain.SymbolQR {
		t.Errorf("format = %q, want QR", result.Format)
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.SymbolFormat
	}{
		{"EAN_13", domain.SymbolEAN13},
		{"EAN_8", domain.SymbolEAN8},
		{"UPC_A", domain.SymbolUPCA},
		{"UPC_E", domain.SymbolUPCE},
		{"QR_CODE", domain.SymbolQR},
		{"CODE_128", domain.SymbolCode128},
		{"CODE_39", domain.SymbolCode39},
		{"AZTEC", domain.SymbolFormat("AZTEC")}, // unknown formats pass through
	}

	for _, tt := range tests {
		if got := FormatLabel(tt.raw); got != tt.want {
			t.Errorf("FormatLabel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
