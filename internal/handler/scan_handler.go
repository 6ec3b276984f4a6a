package handler

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jpalmeida/household-scanner-service/internal/model"
	"github.com/jpalmeida/household-scanner-service/internal/service"
)

// ScanHandler handles HTTP requests for the scanning pipeline
type ScanHandler struct {
	scanService *service.ScanService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanService *service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// ScanReceipt handles the POST /v1/scans/receipt endpoint
// @Summary Scan a receipt image
// @Description Upload a captured receipt image; the pipeline normalizes it, runs text recognition and returns the extracted receipt with per-scan confidence. A receipt where nothing could be extracted is still a 200: the raw lines and recognized text remain available for manual review.
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param captureImage formData file true "Captured receipt image"
// @Success 200 {object} model.ReceiptScanResponse "Scan result, possibly partial"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Recognition failed"
// @Router /v1/scans/receipt [post]
func (h *ScanHandler) ScanReceipt(c *gin.Context) {
	file, _, err := getFormFile(c, "captureImage")
	if err != nil {
		respondBadRequest(c, err.Error(), newErrorDetail("captureImage", "Capture image is required"))
		return
	}
	defer file.Close()

	data, err := readCapture(file)
	if err != nil {
		respondBadRequest(c, ErrFileProcessing)
		return
	}

	result, err := h.scanService.ScanReceipt(c.Request.Context(), data)
	if err != nil {
		log.Printf("receipt scan failed: %v", err)
		respondUnprocessableEntity(c, ErrScanFailed)
		return
	}

	var response model.ReceiptScanResponse
	response.FromScanResult(result)
	respondOK(c, response)
}

// ScanBarcode handles the POST /v1/scans/barcode endpoint
// @Summary Scan a barcode image
// @Description Upload a captured image and decode a barcode symbol from it. An image with no symbol is a 200 with found=false, directing the client to manual entry; only decoder failures are errors.
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param captureImage formData file true "Captured barcode image"
// @Success 200 {object} model.BarcodeScanResponse "Decode outcome"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Decoder failure"
// @Router /v1/scans/barcode [post]
func (h *ScanHandler) ScanBarcode(c *gin.Context) {
	file, _, err := getFormFile(c, "captureImage")
	if err != nil {
		respondBadRequest(c, err.Error(), newErrorDetail("captureImage", "Capture image is required"))
		return
	}
	defer file.Close()

	data, err := readCapture(file)
	if err != nil {
		respondBadRequest(c, ErrFileProcessing)
		return
	}

	result, err := h.scanService.ScanBarcode(c.Request.Context(), data)
	if errors.Is(err, service.ErrNoSymbol) {
		respondOK(c, model.BarcodeScanResponse{Found: false})
		return
	}
	if err != nil {
		log.Printf("barcode scan failed: %v", err)
		respondUnprocessableEntity(c, ErrScanFailed)
		return
	}

	respondOK(c, model.BarcodeScanResponse{
		Found:  true,
		Text:   result.Text,
		Format: string(result.Format),
	})
}
