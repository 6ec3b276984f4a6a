// Package ocr defines the boundary contract for the external text-recognition
// capability and provides the Tesseract-backed default engine.
package ocr

import (
	"context"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// DefaultLanguages is the fixed bilingual hint set handed to the engine:
// Portuguese receipts with English fallback.
var DefaultLanguages = []string{"por", "eng"}

// ProgressFunc receives recognition progress snapshots. The stage label is
// the engine's raw label; fraction advances from 0 to 1 and is never
// decreasing within one recognition run.
type ProgressFunc func(stage string, fraction float64)

// Engine is the text-recognition provider contract: one encoded image in, one
// recognized-text result out, with optional progress reporting along the way.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte, languages []string, progress ProgressFunc) (domain.RecognizedText, error)
}
