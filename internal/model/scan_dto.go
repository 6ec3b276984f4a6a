package model

import (
	"github.com/jpalmeida/household-scanner-service/internal/domain"
	"github.com/jpalmeida/household-scanner-service/internal/scan"
)

// LineItemDTO represents one parsed receipt line in API responses
type LineItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// ReceiptScanResponse represents the result of a receipt scan. Optional
// fields are omitted when extraction found nothing usable; rawLines and the
// recognized text are always present so the review screen can offer manual
// correction.
type ReceiptScanResponse struct {
	Store      *string       `json:"store,omitempty"`
	Date       *string       `json:"date,omitempty"`
	Total      *int64        `json:"total,omitempty"`
	Items      []LineItemDTO `json:"items"`
	RawLines   []string      `json:"rawLines"`
	Text       string        `json:"recognizedText"`
	Confidence int           `json:"confidence"`
}

// FromScanResult populates the response from a pipeline result.
func (r *ReceiptScanResponse) FromScanResult(result *scan.Result) {
	r.Store = result.Receipt.StoreName
	r.Date = result.Receipt.Date
	r.Total = result.Receipt.Total
	r.Items = make([]LineItemDTO, 0, len(result.Receipt.Items))
	for _, item := range result.Receipt.Items {
		r.Items = append(r.Items, LineItemDTO{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Category: string(item.Category),
		})
	}
	r.RawLines = result.Receipt.RawLines
	r.Text = result.Text
	r.Confidence = result.Confidence
}

// BarcodeScanResponse represents the result of a barcode scan. Found is false
// when no symbol is present, which directs the client to manual entry.
type BarcodeScanResponse struct {
	Found  bool   `json:"found"`
	Text   string `json:"text,omitempty"`
	Format string `json:"format,omitempty"`
}

// ProductDTO represents a resolved product in API responses
type ProductDTO struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Barcode  string `json:"barcode"`
}

// ProductResponse represents a product lookup outcome
type ProductResponse struct {
	Found   bool        `json:"found"`
	Product *ProductDTO `json:"product,omitempty"`
}

// FromDescriptor populates the response from a product descriptor.
func (r *ProductResponse) FromDescriptor(d *domain.ProductDescriptor) {
	r.Found = true
	r.Product = &ProductDTO{
		Name:     d.Name,
		Brand:    d.Brand,
		Category: d.Category,
		ImageURL: d.ImageURL,
		Barcode:  d.Barcode,
	}
}

// ErrorDetail represents a field-level validation problem
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized API error
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}
