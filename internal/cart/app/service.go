package app

import (
	"log/slog"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Service owns the state of exactly one storefront view. Every mutation
// goes through Dispatch and the domain reducer.
type Service struct {
	log *slog.Logger

	mu    sync.Mutex
	state domain.State
}

func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		log: log,
	}
}

// Dispatch applies in and returns a copy of the resulting state.
func (s *Service) Dispatch(in domain.Intent) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.Reduce(s.state, in)
	s.log.Debug("cart transition",
		slog.String("intent", in.Name()),
		slog.Int("cart_len", len(s.state.Cart)),
		slog.Bool("dialog_open", s.state.CheckoutDialogOpen),
	)
	return s.state.Clone()
}

func (s *Service) AddToCart(p catalog.Product) {
	s.Dispatch(domain.AddToCart{Product: p})
}

func (s *Service) RemoveFromCart(productID string) {
	s.Dispatch(domain.RemoveFromCart{ProductID: productID})
}

func (s *Service) ToggleCheckoutDialog() {
	s.Dispatch(domain.ToggleCheckoutDialog{})
}

func (s *Service) HandleCheckout() {
	s.Dispatch(domain.Checkout{})
}

func (s *Service) DismissCheckoutDialog() {
	s.Dispatch(domain.DismissCheckoutDialog{})
}

// CalculateTotal is the cart total with two decimals, "0.00" when empty.
func (s *Service) CalculateTotal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FormatAmount(s.state.Cart.Total())
}

func (s *Service) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
