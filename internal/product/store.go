// Package product resolves decoded barcodes to product descriptors: a local
// table first, then a best-effort remote catalog. The only observable
// outcomes at this boundary are "found" and "not found"; lookup-layer errors
// never escape.
package product

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpalmeida/household-scanner-service/internal/domain"
)

// LocalStore is the bounded, synchronous local product table consulted before
// the remote catalog. A miss is (nil, nil).
type LocalStore interface {
	Get(ctx context.Context, barcode string) (*domain.ProductDescriptor, error)
}

// PostgresStore implements LocalStore against the household products table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed local product store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get looks up a product by exact barcode match.
func (s *PostgresStore) Get(ctx context.Context, barcode string) (*domain.ProductDescriptor, error) {
	var p domain.ProductDescriptor
	err := s.db.QueryRow(ctx, `
		SELECT barcode, name, COALESCE(brand, ''), COALESCE(category, ''), COALESCE(image_url, '')
		FROM products
		WHERE barcode = $1
	`, barcode).Scan(&p.Barcode, &p.Name, &p.Brand, &p.Category, &p.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MemoryStore is an in-memory LocalStore used in tests and DB-less
// deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]domain.ProductDescriptor
}

// NewMemoryStore creates an empty in-memory product store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: make(map[string]domain.ProductDescriptor)}
}

// Put adds or replaces a product keyed by its barcode.
func (s *MemoryStore) Put(p domain.ProductDescriptor) {
	s.mu.Lock()
	s.products[p.Barcode] = p
	s.mu.Unlock()
}

// Get looks up a product by exact barcode match.
func (s *MemoryStore) Get(_ context.Context, barcode string) (*domain.ProductDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[barcode]; ok {
		return &p, nil
	}
	return nil, nil
}
