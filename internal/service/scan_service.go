package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jpalmeida/household-scanner-service/internal/barcode"
	"github.com/jpalmeida/household-scanner-service/internal/domain"
	"github.com/jpalmeida/household-scanner-service/internal/imaging"
	"github.com/jpalmeida/household-scanner-service/internal/product"
	"github.com/jpalmeida/household-scanner-service/internal/scan"
)

// ScanServiceError represents an error in the scan service
type ScanServiceError struct {
	Op  string
	Err error
}

func (e *ScanServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ScanServiceError) Unwrap() error {
	return e.Err
}

// ScanService drives the document-scanning pipeline per request: receipt
// recognition, barcode decoding, and product resolution. Each scan is an
// independent pipeline invocation over one captured image; the worker pool
// only bounds how many run at once.
type ScanService struct {
	orchestrator *scan.Orchestrator
	decoder      *barcode.Decoder
	resolver     *product.Resolver
	workerPool   chan struct{}
}

// NewScanService creates a new scan service.
func NewScanService(orchestrator *scan.Orchestrator, decoder *barcode.Decoder, resolver *product.Resolver, maxWorkers int) *ScanService {
	if maxWorkers <= 0 {
		maxWorkers = 5
	}
	return &ScanService{
		orchestrator: orchestrator,
		decoder:      decoder,
		resolver:     resolver,
		workerPool:   make(chan struct{}, maxWorkers),
	}
}

// ScanReceipt runs the full receipt pipeline over a captured image and
// returns the parsed receipt with the engine-reported confidence. Parse
// degradation is not an error; only adapter failures are.
func (s *ScanService) ScanReceipt(ctx context.Context, imageData []byte) (*scan.Result, error) {
	if err := s.acquireWorker(ctx); err != nil {
		return nil, err
	}
	defer s.releaseWorker()

	scanID := uuid.New().String()
	job := s.orchestrator.Start(ctx, imageData)

	go func() {
		for p := range job.Progress() {
			log.Printf("scan %s: %s (%.0f%%)", scanID, p.Stage, p.Fraction*100)
		}
	}()

	result, err := job.Wait(ctx)
	if err != nil {
		return nil, &ScanServiceError{Op: "recognize_receipt", Err: err}
	}

	log.Printf("scan %s: parsed %d items, confidence %d", scanID, len(result.Receipt.Items), result.Confidence)
	return result, nil
}

// ErrNoSymbol is re-exported so handlers can branch on the manual-entry
// fallback without importing the decoder package.
var ErrNoSymbol = barcode.ErrNoSymbol

// ScanBarcode decodes a barcode from a captured image. ErrNoSymbol means no
// symbol is present and the caller should offer manual entry; any other
// error is a decoder failure.
func (s *ScanService) ScanBarcode(ctx context.Context, imageData []byte) (*domain.BarcodeResult, error) {
	if err := s.acquireWorker(ctx); err != nil {
		return nil, err
	}
	defer s.releaseWorker()

	img, err := imaging.Decode(imageData)
	if err != nil {
		return nil, &ScanServiceError{Op: "decode_capture", Err: err}
	}

	result, err := s.decoder.Decode(img)
	if errors.Is(err, barcode.ErrNoSymbol) {
		return nil, ErrNoSymbol
	}
	if err != nil {
		return nil, &ScanServiceError{Op: "decode_symbol", Err: err}
	}
	return result, nil
}

// LookupProduct resolves a barcode (decoded or operator-typed) to a product
// descriptor. Absence is an ordinary outcome, not an error.
func (s *ScanService) LookupProduct(ctx context.Context, code string) (*domain.ProductDescriptor, bool) {
	return s.resolver.Lookup(ctx, code)
}

func (s *ScanService) acquireWorker(ctx context.Context) error {
	select {
	case s.workerPool <- struct{}{}:
		return nil
	case <-ctx.Done():
		return &ScanServiceError{Op: "acquire_worker", Err: ctx.Err()}
	}
}

func (s *ScanService) releaseWorker() {
	<-s.workerPool
}
