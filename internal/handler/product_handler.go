package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jpalmeida/household-scanner-service/internal/model"
	"github.com/jpalmeida/household-scanner-service/internal/service"
)

// ProductHandler handles HTTP requests for product lookups
type ProductHandler struct {
	scanService *service.ScanService
}

// NewProductHandler creates a new product handler
func NewProductHandler(scanService *service.ScanService) *ProductHandler {
	return &ProductHandler{scanService: scanService}
}

// GetProduct handles the GET /v1/products/{barcode} endpoint
// @Summary Resolve a barcode to a product
// @Description Look a barcode up in the local product table, then the remote catalog. The barcode may come from a decoded symbol or manual entry. A miss in both sources is a 404 whose body still carries found=false for the manual-entry flow.
// @Tags products
// @Produce json
// @Param barcode path string true "Product barcode"
// @Success 200 {object} model.ProductResponse "Product found"
// @Failure 404 {object} model.ProductResponse "Product unknown in every source"
// @Router /v1/products/{barcode} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	code, err := getPathParam(c, "barcode")
	if err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	descriptor, found := h.scanService.LookupProduct(c.Request.Context(), code)
	if !found {
		respondNotFound(c, model.ProductResponse{Found: false})
		return
	}

	var response model.ProductResponse
	response.FromDescriptor(descriptor)
	respondOK(c, response)
}
