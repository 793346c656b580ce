package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	products map[string]domain.Product
	gets     int
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	f.gets++
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Product, error) {
	return []domain.Product{f.products["1"]}, nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]domain.Product{
		"1": {ID: "1", Name: "Poco M5s", Price: decimal.NewFromInt(35000)},
	}}
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("blank id -> invalid", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		_, err := svc.GetProduct(ctx, "   ")
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Zero(t, repo.gets, "repo must not be consulted for a blank id")
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.GetProduct(ctx, "42")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("id is trimmed", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		p, err := svc.GetProduct(ctx, " 1 ")
		require.NoError(t, err)
		require.Equal(t, "Poco M5s", p.Name)
	})
}

func TestListProducts(t *testing.T) {
	svc := NewService(newFakeRepo())
	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "1", products[0].ID)
}
