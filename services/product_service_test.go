package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davetiye.store/formschema"
	"davetiye.store/models"
	"davetiye.store/repositories"
)

func TestProductCacheTTL(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &models.Product{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "Kır Düğünü Davetiyesi",
		Category:  models.ProductCategoryDigital,
		Price:     decimal.NewFromInt(150),
		IsActive:  true,
	}

	clock := time.Now()
	service := NewProductService(repo, 60*time.Second).(*ProductService)
	service.now = func() time.Time { return clock }

	ctx := context.Background()
	filter := repositories.ProductFilter{OnlyActive: true}

	_, err := service.GetProducts(ctx, filter)
	require.NoError(t, err)
	_, err = service.GetProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findAlls, "TTL içinde ikinci okuma cache'ten gelmeli")

	// TTL dolunca kaynak tekrar okunur
	clock = clock.Add(61 * time.Second)
	_, err = service.GetProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.findAlls)
}

func TestProductCacheServesStaleAfterWrite(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &models.Product{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "Eski Ad",
		Category:  models.ProductCategoryDigital,
		Price:     decimal.NewFromInt(100),
		IsActive:  true,
	}

	service := NewProductService(repo, time.Minute).(*ProductService)
	ctx := context.Background()

	first, err := service.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Eski Ad", first.Name)

	// Yazma invalidation yapmaz; TTL dolana kadar bayat veri dönebilir
	require.NoError(t, service.UpdateProduct(ctx, 1, map[string]interface{}{"name": "Yeni Ad"}))
	updated := *repo.products[1]
	updated.Name = "Yeni Ad"
	repo.products[1] = &updated

	cached, err := service.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Eski Ad", cached.Name)
}

func TestProductCacheDisabled(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &models.Product{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "Davetiye",
		Category:  models.ProductCategoryDigital,
		IsActive:  true,
	}

	service := NewProductService(repo, 0)
	ctx := context.Background()

	_, _ = service.GetProductByID(ctx, 1)
	_, _ = service.GetProductByID(ctx, 1)
	assert.Equal(t, 2, repo.findByID, "TTL sıfırsa cache devre dışı kalmalı")
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	weddingTheme := formschema.ThemeWeddingV1
	unknownTheme := "DISCO_V7"

	t.Run("kayıtlı tema kabul edilir", func(t *testing.T) {
		service := NewProductService(newFakeProductRepo(), 0)
		err := service.CreateProduct(ctx, &models.Product{
			Name:     "Düğün Davetiyesi",
			Category: models.ProductCategoryDigital,
			Price:    decimal.NewFromInt(200),
			ThemeID:  &weddingTheme,
		})
		assert.NoError(t, err)
	})

	t.Run("tanımsız tema reddedilir", func(t *testing.T) {
		service := NewProductService(newFakeProductRepo(), 0)
		err := service.CreateProduct(ctx, &models.Product{
			Name:     "Parti Davetiyesi",
			Category: models.ProductCategoryDigital,
			ThemeID:  &unknownTheme,
		})
		assert.ErrorIs(t, err, ErrProductUnknownTheme)
	})

	t.Run("temasız fiziksel ürün serbest", func(t *testing.T) {
		service := NewProductService(newFakeProductRepo(), 0)
		err := service.CreateProduct(ctx, &models.Product{
			Name:     "Karton Baskı Paketi",
			Category: models.ProductCategoryPhysical,
			Price:    decimal.NewFromInt(350),
		})
		assert.NoError(t, err)
	})

	t.Run("geçersiz kategori reddedilir", func(t *testing.T) {
		service := NewProductService(newFakeProductRepo(), 0)
		err := service.CreateProduct(ctx, &models.Product{
			Name:     "Davetiye",
			Category: models.ProductCategory("SANAL"),
		})
		assert.ErrorIs(t, err, ErrProductInvalidInput)
	})

	t.Run("negatif fiyat reddedilir", func(t *testing.T) {
		service := NewProductService(newFakeProductRepo(), 0)
		err := service.CreateProduct(ctx, &models.Product{
			Name:     "Davetiye",
			Category: models.ProductCategoryDigital,
			Price:    decimal.NewFromInt(-5),
		})
		assert.ErrorIs(t, err, ErrProductInvalidInput)
	})
}

func TestUpdateProductThemeCheck(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &models.Product{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "Davetiye",
		Category:  models.ProductCategoryDigital,
	}
	service := NewProductService(repo, 0)
	ctx := context.Background()

	assert.ErrorIs(t, service.UpdateProduct(ctx, 1, map[string]interface{}{"theme_id": "YOK_BOYLE_TEMA"}), ErrProductUnknownTheme)
	assert.NoError(t, service.UpdateProduct(ctx, 1, map[string]interface{}{"theme_id": formschema.ThemeBirthdayV1}))
	assert.ErrorIs(t, service.UpdateProduct(ctx, 99, map[string]interface{}{"name": "x"}), ErrProductNotFound)
}
