package domain

import (
	"slices"

	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Cart is an ordered multiset of products. The same product may appear
// more than once; each occurrence is one unit.
type Cart []catalog.Product

// Add returns a new cart with p appended.
func (c Cart) Add(p catalog.Product) Cart {
	next := make(Cart, len(c), len(c)+1)
	copy(next, c)
	return append(next, p)
}

// RemoveAll returns a new cart without any entry whose ID is productID.
func (c Cart) RemoveAll(productID string) Cart {
	return slices.DeleteFunc(slices.Clone(c), func(p catalog.Product) bool {
		return p.ID == productID
	})
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c {
		total = total.Add(p.Price)
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// State is everything a storefront view knows besides the catalog.
type State struct {
	Cart               Cart
	CheckoutDialogOpen bool
}

// Clone returns a state that shares no memory with s.
func (s State) Clone() State {
	return State{
		Cart:               slices.Clone(s.Cart),
		CheckoutDialogOpen: s.CheckoutDialogOpen,
	}
}
