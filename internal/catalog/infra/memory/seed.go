package memory

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

//go:embed catalog.toml
var defaultSeed []byte

// Seed is the startup catalog document.
type Seed struct {
	Title    string
	Products []domain.Product
}

type seedDoc struct {
	Title    string        `toml:"title"`
	Products []seedProduct `toml:"products"`
}

type seedProduct struct {
	ID    string          `toml:"id"`
	Name  string          `toml:"name"`
	Price decimal.Decimal `toml:"price"`
}

// DefaultSeed returns the embedded catalog.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads a TOML seed from path, or the embedded one when path is empty.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read catalog seed: %w", err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return Seed{}, fmt.Errorf("%s: %w", path, err)
	}
	return seed, nil
}

func ParseSeed(data []byte) (Seed, error) {
	var doc seedDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Seed{}, fmt.Errorf("decode catalog seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Seed{}, fmt.Errorf("decode catalog seed: unknown key %q", undecoded[0].String())
	}

	products := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, domain.Product{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}
	return Seed{Title: doc.Title, Products: products}, nil
}
