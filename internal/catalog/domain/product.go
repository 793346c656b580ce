package domain

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry. Cart entries are copies of it.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
