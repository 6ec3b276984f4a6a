package domain

// SymbolFormat identifies the symbology of a decoded barcode. Manual denotes
// an operator-typed code rather than a decoded symbol.
type SymbolFormat string

// Supported symbol formats
const (
	SymbolEAN13   SymbolFormat = "EAN-13"
	SymbolEAN8    SymbolFormat = "EAN-8"
	SymbolUPCA    SymbolFormat = "UPC-A"
	SymbolUPCE    SymbolFormat = "UPC-E"
	SymbolQR      SymbolFormat = "QR"
	SymbolCode128 SymbolFormat = "Code128"
	SymbolCode39  SymbolFormat = "Code39"
	SymbolManual  SymbolFormat = "Manual"
)

// BarcodeResult is the outcome of a successful decode attempt. It is
// constructed once and never mutated.
type BarcodeResult struct {
	Text     string       `json:"text"`
	Format   SymbolFormat `json:"format"`
	RawBytes []byte       `json:"-"`
}

// RecognizedText is the terminal output of a recognition run. Confidence is
// the engine-reported scalar (0-100); it is never recomputed downstream.
type RecognizedText struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

// LineItem is one parsed product entry on a receipt. Price is in integer
// minor currency units and is always strictly positive; Quantity is at least
// 1; Category is always populated.
type LineItem struct {
	Name     string   `json:"name"`
	Quantity int      `json:"qty"`
	Price    int64    `json:"price"`
	Category Category `json:"category"`
}

// ParsedReceipt is the one-shot structured result of extracting a single
// recognized-text blob. Optional fields are nil when nothing usable was
// found, which is distinct from a known-but-empty value. RawLines keeps the
// pre-parse tokenization for review and is retained even when every
// structured field is absent.
type ParsedReceipt struct {
	StoreName *string    `json:"store,omitempty"`
	Date      *string    `json:"date,omitempty"` // ISO-8601 (YYYY-MM-DD)
	Items     []LineItem `json:"items"`
	Total     *int64     `json:"total,omitempty"`
	RawLines  []string   `json:"rawLines"`
}

// ProductDescriptor describes a product resolved from a barcode, sourced from
// either the local table or the remote catalog; the caller cannot tell which.
type ProductDescriptor struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Barcode  string `json:"barcode"`
}
