package domain

import catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"

// Intent is a discrete user action against a storefront view.
type Intent interface {
	Name() string
}

type AddToCart struct {
	Product catalog.Product
}

type RemoveFromCart struct {
	ProductID string
}

type ToggleCheckoutDialog struct{}

// Checkout opens the dialog whether or not the cart is empty. The dialog
// decides which message to show when it is rendered.
type Checkout struct{}

// DismissCheckoutDialog closes the dialog if it is open.
type DismissCheckoutDialog struct{}

func (AddToCart) Name() string             { return "add_to_cart" }
func (RemoveFromCart) Name() string        { return "remove_from_cart" }
func (ToggleCheckoutDialog) Name() string  { return "toggle_checkout_dialog" }
func (Checkout) Name() string              { return "checkout" }
func (DismissCheckoutDialog) Name() string { return "dismiss_checkout_dialog" }

// Reduce applies in to s and returns the next state. s is not modified.
// Intents it does not know leave the state unchanged.
func Reduce(s State, in Intent) State {
	switch in := in.(type) {
	case AddToCart:
		s.Cart = s.Cart.Add(in.Product)
	case RemoveFromCart:
		s.Cart = s.Cart.RemoveAll(in.ProductID)
	case ToggleCheckoutDialog:
		s.CheckoutDialogOpen = !s.CheckoutDialogOpen
	case Checkout:
		s.CheckoutDialogOpen = true
	case DismissCheckoutDialog:
		if s.CheckoutDialogOpen {
			s = Reduce(s, ToggleCheckoutDialog{})
		}
	}
	return s
}
