package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpalmeida/household-scanner-service/internal/model"
)

// Common error messages
const (
	ErrInvalidInput   = "Invalid input format"
	ErrFileProcessing = "Failed to process file"
	ErrScanFailed     = "Recognition failed, please retry with a new capture"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	c.JSON(statusCode, model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response with a body the client can
// still render
func respondNotFound(c *gin.Context, body interface{}) {
	c.JSON(http.StatusNotFound, body)
}

// respondUnprocessableEntity sends a 422 Unprocessable Entity response
func respondUnprocessableEntity(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusUnprocessableEntity, message, details...)
}

// respondInternalServerError sends a 500 Internal Server Error response
func respondInternalServerError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, message)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// newErrorDetail creates a field-level error detail
func newErrorDetail(field, message string) model.ErrorDetail {
	return model.ErrorDetail{Field: field, Message: message}
}
