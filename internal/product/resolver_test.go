package product

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

func TestResolverLocalHitSkipsCatalog(t *testing.T) {
	store := NewMemoryStore()
	store.Put(domain.ProductDescriptor{
		Barcode:  "5601234567890",
		Name:     "Arroz Agulha",
		Category: string(domain.CategoryPantry),
	})

	catalog := NewCatalogClient("http://127.0.0.1:1", time.Second) // unreachable on purpose
	r := NewResolver(store, catalog)

	descriptor, found := r.Lookup(context.Background(), "5601234567890")
	if !found {
		t.Fatal("expected local hit")
	}
	if descriptor.Name != "Arroz Agulha" {
		t.Errorf("name = %q", descriptor.Name)
	}
}

func TestResolverFallsBackToCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/product/789100031550" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "found",
			"product": {
				"name": "Cuca Lager",
				"brands": "Cuca, ECL",
				"categories_tags": ["en:beverages", "en:beers"],
				"image_small_url": "https://img.example/cuca.jpg"
			}
		}`))
	}))
	defer server.Close()

	r := NewResolver(NewMemoryStore(), NewCatalogClient(server.URL, time.Second))

	descriptor, found := r.Lookup(context.Background(), "789100031550")
	if !found {
		t.Fatal("expected catalog hit")
	}
	if descriptor.Name != "Cuca Lager" {
		t.Errorf("name = %q", descriptor.Name)
	}
	if descriptor.Brand != "Cuca" {
		t.Errorf("brand = %q, want first entry only", descriptor.Brand)
	}
	if descriptor.Category != string(domain.CategoryBeverages) {
		t.Errorf("category = %q, want Beverages", descriptor.Category)
	}
	if descriptor.Barcode != "789100031550" {
		t.Errorf("barcode = %q", descriptor.Barcode)
	}
}

func TestResolverCatalogStatusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "product not found"}`))
	}))
	defer server.Close()

	r := NewResolver(NewMemoryStore(), NewCatalogClient(server.URL, time.Second))

	if _, found := r.Lookup(context.Background(), "0000000000000"); found {
		t.Fatal("status != found must resolve to not found")
	}
}

func TestResolverCatalogHTTPErrorIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	r := NewResolver(NewMemoryStore(), NewCatalogClient(server.URL, time.Second))

	if _, found := r.Lookup(context.Background(), "1234"); found {
		t.Fatal("non-2xx must resolve to not found, never an error")
	}
}

func TestResolverNetworkFailureIsNotFound(t *testing.T) {
	r := NewResolver(NewMemoryStore(), NewCatalogClient("http://127.0.0.1:1", 50*time.Millisecond))

	if _, found := r.Lookup(context.Background(), "1234"); found {
		t.Fatal("network failure must resolve to not found")
	}
}

func TestResolverLocalErrorFallsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "found", "product": {"name": "Fallback"}}`))
	}))
	defer server.Close()

	r := NewResolver(failingStore{}, NewCatalogClient(server.URL, time.Second))

	descriptor, found := r.Lookup(context.Background(), "42")
	if !found || descriptor.Name != "Fallback" {
		t.Fatalf("local store failure should fall through to the catalog, got %v %v", descriptor, found)
	}
}

func TestResolverEmptyBarcode(t *testing.T) {
	r := NewResolver(NewMemoryStore(), nil)
	if _, found := r.Lookup(context.Background(), ""); found {
		t.Fatal("empty barcode is never found")
	}
}

func TestCatalogLookupIsCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(`{"status": "found", "product": {"name": "Cached"}}`))
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL, time.Second)
	c.Fetch(context.Background(), "77")
	c.Fetch(context.Background(), "77")

	if calls != 1 {
		t.Errorf("catalog called %d times, want 1", calls)
	}
}

func TestCategoryFromTags(t *testing.T) {
	tests := []struct {
		tags []string
		want domain.Category
	}{
		{[]string{"en:rices"}, domain.CategoryPantry},
		{[]string{"en:plant-based-foods", "en:fruits"}, domain.CategoryProduce},
		{[]string{"en:unrelated"}, domain.CategoryOther},
		{nil, domain.CategoryOther},
	}
	for _, tt := range tests {
		if got := categoryFromTags(tt.tags); got != tt.want {
			t.Errorf("categoryFromTags(%v) = %q, want %q", tt.tags, got, tt.want)
		}
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*domain.ProductDescriptor, error) {
	return nil, errors.New("table offline")
}
