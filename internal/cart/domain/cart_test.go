package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	phone    = catalog.Product{ID: "1", Name: "Poco M5s", Price: decimal.NewFromInt(35000)}
	tablet   = catalog.Product{ID: "2", Name: " Q - Tab", Price: decimal.NewFromInt(12999)}
	cupboard = catalog.Product{ID: "3", Name: "Cupboard", Price: decimal.NewFromInt(94899)}
)

func ids(c Cart) []string {
	out := make([]string, 0, len(c))
	for _, p := range c {
		out = append(out, p.ID)
	}
	return out
}

func TestReduceAddKeepsInsertionOrder(t *testing.T) {
	var s State
	seq := []catalog.Product{tablet, phone, tablet, cupboard, phone}
	for _, p := range seq {
		s = Reduce(s, AddToCart{Product: p})
	}
	require.Len(t, s.Cart, len(seq))
	assert.Equal(t, []string{"2", "1", "2", "3", "1"}, ids(s.Cart))
}

func TestReduceRemoveTakesEveryMatch(t *testing.T) {
	s := State{Cart: Cart{phone, tablet, phone, cupboard, phone}}

	next := Reduce(s, RemoveFromCart{ProductID: "1"})
	assert.Equal(t, []string{"2", "3"}, ids(next.Cart))

	t.Run("absent id leaves cart unchanged", func(t *testing.T) {
		same := Reduce(next, RemoveFromCart{ProductID: "9"})
		assert.Equal(t, next, same)
	})

	t.Run("empty cart", func(t *testing.T) {
		empty := Reduce(State{}, RemoveFromCart{ProductID: "1"})
		assert.True(t, empty.Cart.IsEmpty())
	})
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := State{Cart: Cart{phone, tablet}}
	before := s.Clone()

	_ = Reduce(s, AddToCart{Product: cupboard})
	_ = Reduce(s, RemoveFromCart{ProductID: "1"})
	_ = Reduce(s, Checkout{})

	assert.Equal(t, before, s)
}

func TestReduceDialog(t *testing.T) {
	var s State

	s = Reduce(s, ToggleCheckoutDialog{})
	assert.True(t, s.CheckoutDialogOpen)
	s = Reduce(s, ToggleCheckoutDialog{})
	assert.False(t, s.CheckoutDialogOpen)

	s = Reduce(s, Checkout{})
	assert.True(t, s.CheckoutDialogOpen, "checkout opens the dialog on an empty cart")
	s = Reduce(s, Checkout{})
	assert.True(t, s.CheckoutDialogOpen, "checkout never closes the dialog")

	s = Reduce(s, DismissCheckoutDialog{})
	assert.False(t, s.CheckoutDialogOpen)
	s = Reduce(s, DismissCheckoutDialog{})
	assert.False(t, s.CheckoutDialogOpen, "dismissing a closed dialog is a no-op")
}

type unknownIntent struct{}

func (unknownIntent) Name() string { return "unknown" }

func TestReduceUnknownIntent(t *testing.T) {
	s := State{Cart: Cart{phone}, CheckoutDialogOpen: true}
	assert.Equal(t, s, Reduce(s, unknownIntent{}))
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name string
		cart Cart
		want string
	}{
		{"empty", nil, "0.00"},
		{"two phones", Cart{phone, phone}, "70000.00"},
		{"mixed", Cart{phone, tablet, cupboard}, "142898.00"},
		{"fractions", Cart{
			{ID: "a", Price: decimal.RequireFromString("0.10")},
			{ID: "b", Price: decimal.RequireFromString("0.20")},
		}, "0.30"},
		{"rounds half up", Cart{{ID: "a", Price: decimal.RequireFromString("1.005")}}, "1.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.cart.Total()))
		})
	}
}
