package adapter

import (
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

// CartItems turns cart entries into quantities per product.
func CartItems(cart cartdomain.Cart) []checkoutapp.CartItem {
	ids := make([]string, 0, len(cart))
	for _, p := range cart {
		ids = append(ids, p.ID)
	}
	return checkoutapp.GroupByProduct(ids)
}
