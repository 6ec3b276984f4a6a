// Package barcode wraps the gozxing symbol-decoding library behind the two
// outcomes callers care about: a decoded symbol, or a distinguished
// "no symbol present" value that is not an error.
package barcode

import (
	"errors"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// ErrNoSymbol signals that no barcode symbol is present in the image. Callers
// branch on it to fall back to manual entry; it must never be treated as a
// decoder failure.
var ErrNoSymbol = errors.New("no barcode symbol found")

// Decoder attempts every supported symbology against a captured image.
type Decoder struct {
	readers []gozxing.Reader
}

// NewDecoder creates a decoder covering the supported retail symbologies plus
// QR.
func NewDecoder() *Decoder {
	return &Decoder{
		readers: []gozxing.Reader{
			oned.NewEAN13Reader(),
			oned.NewEAN8Reader(),
			oned.NewUPCAReader(),
			oned.NewUPCEReader(),
			qrcode.NewQRCodeReader(),
			oned.NewCode128Reader(),
			oned.NewCode39Reader(),
		},
	}
}

// Decode scans the image with each reader in turn. It returns ErrNoSymbol
// when every reader reports absence; any other reader failure is propagated
// as a hard error, distinct from absence.
func (d *Decoder) Decode(img image.Image) (*domain.BarcodeResult, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to build bitmap: %w", err)
	}

	var hardErr error
	for _, reader := range d.readers {
		result, err := reader.Decode(bmp, nil)
		if err == nil {
			return &domain.BarcodeResult{
				Text:     result.GetText(),
				Format:   FormatLabel(result.GetBarcodeFormat().String()),
				RawBytes: result.GetRawBytes(),
			}, nil
		}
		if !isNotFound(err) && hardErr == nil {
			hardErr = err
		}
	}

	if hardErr != nil {
		return nil, fmt.Errorf("failed to decode symbol: %w", hardErr)
	}
	return nil, ErrNoSymbol
}

// isNotFound reports whether the reader signalled "no symbol here" as opposed
// to an actual decoding failure.
func isNotFound(err error) bool {
	_, ok := err.(gozxing.NotFoundException)
	return ok
}
