package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// maxCaptureBytes bounds uploaded capture size; phone photos stay well under
// this.
const maxCaptureBytes = 20 << 20

// getFormFile retrieves a file from multipart form data
func getFormFile(c *gin.Context, fieldName string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := c.Request.FormFile(fieldName)
	if err != nil {
		return nil, nil, fmt.Errorf("no %s provided", fieldName)
	}
	return file, header, nil
}

// readCapture reads a multipart capture into memory with a size bound
func readCapture(file multipart.File) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxCaptureBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}
	if len(data) > maxCaptureBytes {
		return nil, fmt.Errorf("capture exceeds %d bytes", maxCaptureBytes)
	}
	return data, nil
}

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}
