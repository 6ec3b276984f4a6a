package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLineItem represents one parsed receipt line in API responses
type TestLineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// TestReceiptScan represents the response from POST /v1/scans/receipt
type TestReceiptScan struct {
	Store      *string        `json:"store"`
	Date       *string        `json:"date"`
	Total      *int64         `json:"total"`
	Items      []TestLineItem `json:"items"`
	RawLines   []string       `json:"rawLines"`
	Text       string         `json:"recognizedText"`
	Confidence int            `json:"confidence"`
}

// TestBarcodeScan represents the response from POST /v1/scans/barcode
type TestBarcodeScan struct {
	Found  bool   `json:"found"`
	Text   string `json:"text"`
	Format string `json:"format"`
}

// TestProductLookup represents the response from GET /v1/products/:barcode
type TestProductLookup struct {
	Found   bool `json:"found"`
	Product *struct {
		Name     string `json:"name"`
		Brand    string `json:"brand"`
		Category string `json:"category"`
		Barcode  string `json:"barcode"`
	} `json:"product"`
}

func baseURL() string {
	if url := os.Getenv("API_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func postCapture(t *testing.T, client *http.Client, url, imagePath string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fileWriter, err := writer.CreateFormFile("captureImage", filepath.Base(imagePath))
	require.NoError(t, err, "Failed to create form file")

	file, err := os.Open(imagePath)
	require.NoError(t, err, "Failed to open test image")
	defer file.Close()

	_, err = io.Copy(fileWriter, file)
	require.NoError(t, err, "Failed to copy file to form")
	require.NoError(t, writer.Close(), "Failed to close multipart writer")

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	require.NoError(t, err, "Failed to execute request")
	return resp
}

// TestScanAPI exercises the scanning endpoints against a running server.
// Set API_BASE_URL to point at the server under test.
func TestScanAPI(t *testing.T) {
	client := &http.Client{
		Timeout: 60 * time.Second,
	}

	t.Run("Health", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/health", baseURL()))
		require.NoError(t, err, "Failed to execute request")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, "Expected status code 200")
	})

	t.Run("ScanReceipt", func(t *testing.T) {
		imagePath := "../../testdata/sample_receipt.png"
		if _, err := os.Stat(imagePath); os.IsNotExist(err) {
			t.Skip("Test image not found, skipping receipt scan test")
		}

		resp := postCapture(t, client, fmt.Sprintf("%s/v1/scans/receipt", baseURL()), imagePath)
		defer resp.Body.Close()

		// 422 is acceptable when the engine cannot read the capture; anything
		// else besides 200 is a failure.
		if resp.StatusCode == http.StatusUnprocessableEntity {
			t.Log("Receipt capture could not be recognized (status 422)")
			return
		}
		require.Equal(t, http.StatusOK, resp.StatusCode, "Expected status code 200")

		var result TestReceiptScan
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "Failed to decode response body")

		assert.NotNil(t, result.Items, "Items should be present even when empty")
		assert.NotNil(t, result.RawLines, "Raw lines should always be returned")
		assert.GreaterOrEqual(t, result.Confidence, 0, "Confidence should not be negative")
		assert.LessOrEqual(t, result.Confidence, 100, "Confidence should not exceed 100")
		for _, item := range result.Items {
			assert.GreaterOrEqual(t, item.Quantity, 1, "Item quantity should be at least 1")
			assert.Greater(t, item.Price, int64(0), "Item price should be positive")
			assert.NotEmpty(t, item.Category, "Item should carry a category")
		}
	})

	t.Run("ScanReceiptMissingFile", func(t *testing.T) {
		resp, err := client.Post(fmt.Sprintf("%s/v1/scans/receipt", baseURL()), "multipart/form-data", nil)
		require.NoError(t, err, "Failed to execute request")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "Expected status code 400")
	})

	t.Run("ScanBarcode", func(t *testing.T) {
		imagePath := "../../testdata/sample_barcode.png"
		if _, err := os.Stat(imagePath); os.IsNotExist(err) {
			t.Skip("Test image not found, skipping barcode scan test")
		}

		resp := postCapture(t, client, fmt.Sprintf("%s/v1/scans/barcode", baseURL()), imagePath)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode, "Expected status code 200")

		var result TestBarcodeScan
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "Failed to decode response body")

		if result.Found {
			assert.NotEmpty(t, result.Text, "Decoded symbol should carry text")
			assert.NotEmpty(t, result.Format, "Decoded symbol should carry a format")
		}
	})

	t.Run("ProductLookupUnknownBarcode", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("%s/v1/products/0000000000000", baseURL()))
		require.NoError(t, err, "Failed to execute request")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "Expected status code 404")

		var result TestProductLookup
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "Failed to decode response body")
		assert.False(t, result.Found, "Unknown barcode should not resolve")
	})
}
