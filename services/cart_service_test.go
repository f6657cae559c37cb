package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davetiye.store/models"
)

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()

	products := newFakeProductRepo()
	products.products[1] = &models.Product{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "Düğün Davetiyesi",
		Category:  models.ProductCategoryDigital,
		Price:     decimal.NewFromInt(150),
		IsActive:  true,
	}
	products.products[2] = &models.Product{
		BaseModel: models.BaseModel{ID: 2},
		Name:      "Satıştan Kalkan",
		Category:  models.ProductCategoryDigital,
		IsActive:  false,
	}

	t.Run("aktif ürün eklenir", func(t *testing.T) {
		carts := &fakeCartRepo{}
		service := NewCartService(carts, products)
		require.NoError(t, service.AddItem(ctx, 10, 1, 2))
		assert.Len(t, carts.cart.Items, 1)
	})

	t.Run("pasif ürün eklenemez", func(t *testing.T) {
		service := NewCartService(&fakeCartRepo{}, products)
		assert.ErrorIs(t, service.AddItem(ctx, 10, 2, 1), ErrCartProductNotFound)
	})

	t.Run("olmayan ürün eklenemez", func(t *testing.T) {
		service := NewCartService(&fakeCartRepo{}, products)
		assert.ErrorIs(t, service.AddItem(ctx, 10, 999, 1), ErrCartProductNotFound)
	})

	t.Run("sıfır miktar reddedilir", func(t *testing.T) {
		service := NewCartService(&fakeCartRepo{}, products)
		assert.ErrorIs(t, service.AddItem(ctx, 10, 1, 0), ErrCartInvalidQuantity)
	})
}

func TestCartRemoveItem(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo()
	products.products[1] = &models.Product{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "Davetiye",
		Category:  models.ProductCategoryDigital,
		IsActive:  true,
	}

	carts := &fakeCartRepo{}
	service := NewCartService(carts, products)
	require.NoError(t, service.AddItem(ctx, 10, 1, 1))

	assert.ErrorIs(t, service.RemoveItem(ctx, 10, 999), ErrCartItemNotFound)
	assert.NoError(t, service.RemoveItem(ctx, 10, 1))
	assert.Empty(t, carts.cart.Items)
}
