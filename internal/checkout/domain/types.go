package domain

import "github.com/shopspring/decimal"

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Quote summarizes a cart by distinct product, in first-seen order.
type Quote struct {
	Lines []QuoteLine
	Total decimal.Decimal
}
