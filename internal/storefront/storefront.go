// Package storefront assembles the storefront screen from a view's state, the
// catalog and the checkout summary. The web and console surfaces both render
// through it.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/storefront/page"
	"github.com/dwikikusuma/storefront/pkg/config"
)

// quoteConcurrency bounds catalog lookups per checkout summary.
const quoteConcurrency = 10

type Screen struct {
	Title    string
	Currency string
	Catalog  *catalogapp.Service
	Checkout *checkoutapp.Service
	Log      *slog.Logger
}

// NewScreen seeds the catalog from cfg.CatalogFile (the built-in catalog when
// empty) and wires the checkout summary over it.
func NewScreen(cfg config.Config, log *slog.Logger) (*Screen, error) {
	if log == nil {
		log = slog.Default()
	}
	seed, err := memory.LoadSeed(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("catalog seed: %w", err)
	}
	repo, err := memory.NewProductRepo(seed.Products)
	if err != nil {
		return nil, fmt.Errorf("catalog seed: %w", err)
	}
	catalogSvc := catalogapp.NewService(repo)
	log.Info("catalog seeded", slog.String("title", seed.Title), slog.Int("products", len(seed.Products)))

	return &Screen{
		Title:    seed.Title,
		Currency: cfg.Currency,
		Catalog:  catalogSvc,
		Checkout: checkoutapp.NewService(adapter.NewCatalogServiceReader(catalogSvc), quoteConcurrency),
		Log:      log,
	}, nil
}

// Page builds the view model for st. A failed checkout summary is logged
// and left out; the dialog message does not depend on it.
func (s *Screen) Page(ctx context.Context, st cartdomain.State) (page.Page, error) {
	products, err := s.Catalog.ListProducts(ctx)
	if err != nil {
		return page.Page{}, err
	}

	return page.Build(page.Input{
		Title:    s.Title,
		Currency: s.Currency,
		Catalog:  products,
		State:    st,
		Quote:    s.quote(ctx, st),
	}), nil
}

func (s *Screen) quote(ctx context.Context, st cartdomain.State) *checkoutdomain.Quote {
	if !st.CheckoutDialogOpen || st.Cart.IsEmpty() || s.Checkout == nil {
		return nil
	}
	q, err := s.Checkout.Quote(ctx, adapter.CartItems(st.Cart))
	if err != nil {
		if !errors.Is(err, checkoutapp.ErrEmptyCart) {
			s.logger().Warn("checkout summary failed", slog.Any("err", err))
		}
		return nil
	}
	return &q
}

func (s *Screen) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}
