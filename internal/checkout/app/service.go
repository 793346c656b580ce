package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
)

type CartItem struct {
	ProductID string
	Quantity  int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type Service struct {
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

var ErrEmptyCart = errors.New("cart is empty")

// GroupByProduct collapses cart entry ids into one item per product,
// keeping the order in which each product was first added.
func GroupByProduct(productIDs []string) []CartItem {
	index := make(map[string]int, len(productIDs))
	items := make([]CartItem, 0, len(productIDs))
	for _, id := range productIDs {
		if i, ok := index[id]; ok {
			items[i].Quantity++
			continue
		}
		index[id] = len(items)
		items = append(items, CartItem{ProductID: id, Quantity: 1})
	}
	return items
}

// Quote prices the cart against the catalog. Nothing is ordered or reserved.
func (s *Service) Quote(ctx context.Context, items []CartItem) (domain.Quote, error) {
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(it.Quantity)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}

	return domain.Quote{
		Lines: lines,
		Total: total,
	}, nil
}
