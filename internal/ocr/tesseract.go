package ocr

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// Raw stage labels emitted by the Tesseract engine.
const (
	StageLoading     = "loading engine"
	StageRecognizing = "recognizing text"
	StageScoring     = "scoring words"
	StageComplete    = "complete"
)

// TesseractEngine implements Engine using the gosseract client.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs the Tesseract-backed recognition engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize runs OCR on an encoded image. Confidence is the mean word
// confidence Tesseract reports, on the engine's own 0-100 scale.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte, languages []string, progress ProgressFunc) (domain.RecognizedText, error) {
	report := func(stage string, fraction float64) {
		if progress != nil {
			progress(stage, fraction)
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.RecognizedText{}, err
	}

	client := e.clientFactory()
	defer client.Close()

	report(StageLoading, 0.1)
	if err := client.SetImageFromBytes(image); err != nil {
		return domain.RecognizedText{}, fmt.Errorf("set image: %w", err)
	}
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			return domain.RecognizedText{}, fmt.Errorf("set languages: %w", err)
		}
	}

	report(StageRecognizing, 0.4)
	text, err := client.Text()
	if err != nil {
		return domain.RecognizedText{}, fmt.Errorf("recognize text: %w", err)
	}

	report(StageScoring, 0.8)
	confidence := meanWordConfidence(client)

	report(StageComplete, 1.0)
	return domain.RecognizedText{
		Text:       strings.TrimSpace(text),
		Confidence: confidence,
	}, nil
}

func meanWordConfidence(client *gosseract.Client) int {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, box := range boxes {
		sum += box.Confidence
	}
	return int(math.Round(sum / float64(len(boxes))))
}
