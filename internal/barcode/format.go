package barcode

import "github.com/jpalmeida/household-scanner-service/internal/domain"

// formatLabels maps the decoder's raw enumeration names to user-facing
// display names.
var formatLabels = map[string]domain.SymbolFormat{
	"EAN_13":   domain.SymbolEAN13,
	"EAN_8":    domain.SymbolEAN8,
	"UPC_A":    domain.SymbolUPCA,
	"UPC_E":    domain.SymbolUPCE,
	"QR_CODE":  domain.SymbolQR,
	"CODE_128": domain.SymbolCode128,
	"CODE_39":  domain.SymbolCode39,
}

// FormatLabel normalizes a raw decoder format name. Unknown formats pass
// through unchanged rather than being suppressed.
func FormatLabel(raw string) domain.SymbolFormat {
	if label, ok := formatLabels[raw]; ok {
		return label
	}
	return domain.SymbolFormat(raw)
}
