package product

import (
	"context"
	"log"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// Resolver resolves barcodes local-first, then against the remote catalog.
type Resolver struct {
	local   LocalStore
	catalog *CatalogClient
}

// NewResolver builds a resolver. Either collaborator may be nil, in which
// case that source is skipped.
func NewResolver(local LocalStore, catalog *CatalogClient) *Resolver {
	return &Resolver{local: local, catalog: catalog}
}

// Lookup resolves a barcode to a product descriptor. It tries the local
// table first and falls back to the remote catalog; both sources missing (or
// failing) yields (nil, false). Errors are swallowed here: lookups are
// best-effort and absence is an expected outcome, not a fault.
func (r *Resolver) Lookup(ctx context.Context, barcode string) (*domain.ProductDescriptor, bool) {
	if barcode == "" {
		return nil, false
	}

	if r.local != nil {
		descriptor, err := r.local.Get(ctx, barcode)
		if err != nil {
			log.Printf("local product lookup failed for %s: %v", barcode, err)
		} else if descriptor != nil {
			return descriptor, true
		}
	}

	if r.catalog != nil {
		return r.catalog.Fetch(ctx, barcode)
	}

	return nil, false
}
