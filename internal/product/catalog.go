package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

const (
	defaultCatalogURL = "https://world.openfoodfacts.org/api/v0"
	catalogCacheTTL   = 1 * time.Hour
)

// catalogResponse mirrors the remote catalog's product payload.
type catalogResponse struct {
	Status  string `json:"status"`
	Product struct {
		Name          string   `json:"name"`
		Brands        string   `json:"brands"`
		CategoryTags  []string `json:"categories_tags"`
		ImageSmallURL string   `json:"image_small_url"`
	} `json:"product"`
}

// CatalogClient fetches product descriptors from the remote catalog by
// barcode. Lookups are best-effort: network failures, non-2xx responses and
// absent products all collapse to "not found".
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	cache      map[string]*cachedLookup
	cacheMu    sync.RWMutex
}

type cachedLookup struct {
	product   *domain.ProductDescriptor
	found     bool
	expiresAt time.Time
}

// NewCatalogClient creates a catalog client. An empty baseURL selects the
// public catalog.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	if baseURL == "" {
		baseURL = defaultCatalogURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: make(map[string]*cachedLookup),
	}
}

// Fetch resolves a barcode against the remote catalog. It never returns an
// error: any failure is reported as not found.
func (c *CatalogClient) Fetch(ctx context.Context, barcode string) (*domain.ProductDescriptor, bool) {
	c.cacheMu.RLock()
	if cached, ok := c.cache[barcode]; ok && time.Now().Before(cached.expiresAt) {
		c.cacheMu.RUnlock()
		return cached.product, cached.found
	}
	c.cacheMu.RUnlock()

	product, found := c.fetchRemote(ctx, barcode)

	c.cacheMu.Lock()
	c.cache[barcode] = &cachedLookup{
		product:   product,
		found:     found,
		expiresAt: time.Now().Add(catalogCacheTTL),
	}
	c.cacheMu.Unlock()

	return product, found
}

func (c *CatalogClient) fetchRemote(ctx context.Context, barcode string) (*domain.ProductDescriptor, bool) {
	url := fmt.Sprintf("%s/product/%s", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}

	var body catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false
	}
	if body.Status != "found" || body.Product.Name == "" {
		return nil, false
	}

	return &domain.ProductDescriptor{
		Name:     body.Product.Name,
		Brand:    firstBrand(body.Product.Brands),
		Category: string(categoryFromTags(body.Product.CategoryTags)),
		ImageURL: body.Product.ImageSmallURL,
		Barcode:  barcode,
	}, true
}

// firstBrand keeps the first entry of the catalog's comma-separated brand
// list.
func firstBrand(brands string) string {
	if idx := strings.Index(brands, ","); idx >= 0 {
		brands = brands[:idx]
	}
	return strings.TrimSpace(brands)
}
