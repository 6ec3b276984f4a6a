package scan

import "github.com/jpalmeida/household-scanner-service/internal/ocr"

// LabelPreparing is published while the image is normalized, before the
// recognition engine is invoked.
const LabelPreparing = "Preparing image"

// stageLabels maps the engine's raw stage labels to the small fixed set of
// user-facing phrases.
var stageLabels = map[string]string{
	ocr.StageLoading:     "Warming up scanner",
	ocr.StageRecognizing: "Reading receipt",
	ocr.StageScoring:     "Checking accuracy",
	ocr.StageComplete:    "Finishing up",
}

// StageLabel translates a raw engine stage label. Unmapped labels pass
// through unchanged rather than being dropped.
func StageLabel(raw string) string {
	if label, ok := stageLabels[raw]; ok {
		return label
	}
	return raw
}
