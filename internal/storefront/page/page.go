// Package page projects storefront state into a render-ready view model and
// renders it as HTML or plain text. Everything here is a pure function of its
// input: the same input always renders the same bytes.
package page

import (
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkout "github.com/dwikikusuma/storefront/internal/checkout/domain"
)

const (
	CartHeading          = "To Buy"
	EmptyCartPlaceholder = "Add at least one product to the cart."
	EmptyCheckoutMessage = "Add at least one product to the cart before proceeding."
	OrderPlacedMessage   = "Congratulations! Your order is placed successfully."
)

// Input is everything a page is built from. Quote, when present, is listed
// under the success message.
type Input struct {
	Title    string
	Currency string
	Catalog  []catalog.Product
	State    cartdomain.State
	Quote    *checkout.Quote
}

// Page is the view model. Placeholder is set instead of Cart when the cart
// is empty.
type Page struct {
	Title       string
	Catalog     []Row
	Cart        []Row
	Placeholder string
	Total       string
	Dialog      Dialog
}

// Row is one catalog or cart line. Price is pre-formatted without decimals.
type Row struct {
	ProductID string
	Name      string
	Price     string
}

type Dialog struct {
	Open    bool
	Message string
	Summary []SummaryLine
	Total   string
}

type SummaryLine struct {
	Name      string
	Quantity  int64
	UnitPrice string
	LineTotal string
}

func Build(in Input) Page {
	p := Page{
		Title:   in.Title,
		Catalog: rows(in.Currency, in.Catalog),
		Total:   in.Currency + cartdomain.FormatAmount(in.State.Cart.Total()),
	}

	if in.State.Cart.IsEmpty() {
		p.Placeholder = EmptyCartPlaceholder
	} else {
		p.Cart = rows(in.Currency, in.State.Cart)
	}

	if in.State.CheckoutDialogOpen {
		p.Dialog = dialog(in)
	}
	return p
}

func rows(currency string, products []catalog.Product) []Row {
	out := make([]Row, 0, len(products))
	for _, product := range products {
		out = append(out, Row{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     currency + product.Price.StringFixed(0),
		})
	}
	return out
}

// dialog picks the message from the cart at render time, not at checkout time.
func dialog(in Input) Dialog {
	if in.State.Cart.IsEmpty() {
		return Dialog{Open: true, Message: EmptyCheckoutMessage}
	}

	d := Dialog{Open: true, Message: OrderPlacedMessage}
	if in.Quote == nil {
		return d
	}
	for _, line := range in.Quote.Lines {
		d.Summary = append(d.Summary, SummaryLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: in.Currency + cartdomain.FormatAmount(line.UnitPrice),
			LineTotal: in.Currency + cartdomain.FormatAmount(line.LineTotal),
		})
	}
	d.Total = in.Currency + cartdomain.FormatAmount(in.Quote.Total)
	return d
}
