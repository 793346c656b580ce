package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// ProductRepo is a read-only catalog. It never changes after construction.
type ProductRepo struct {
	products []domain.Product
	byID     map[string]int
}

// NewProductRepo validates the seed and freezes it. The catalog must be
// non-empty, ids must be unique and non-blank, and prices non-negative.
func NewProductRepo(products []domain.Product) (*ProductRepo, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty: %w", app.ErrInvalidInput)
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("product #%d has a blank id: %w", i, app.ErrInvalidInput)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q: %w", p.ID, app.ErrInvalidInput)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q has negative price %s: %w", p.ID, p.Price, app.ErrInvalidInput)
		}
		byID[p.ID] = i
	}

	return &ProductRepo{
		products: slices.Clone(products),
		byID:     byID,
	}, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %q: %w", id, app.ErrNotFound)
	}
	return r.products[i], nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}
