package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
)

// ProductFilter müşteri tarafı ürün listeleme filtresi.
type ProductFilter struct {
	Category   models.ProductCategory
	OnlyActive bool
}

// IProductRepository ürün veritabanı işlemleri için arayüz.
type IProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Product, int64, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository IProductRepository arayüzünü uygular.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository verilen bağlantı ile bir ProductRepository oluşturur.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("DesignTemplate").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.OnlyActive {
		q = q.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	err := q.Order("created_at desc").Find(&products).Error
	if err != nil {
		configslog.Log.Error("Ürünler listelenemedi", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Product{})
	if params.Name != "" {
		q = q.Where("name ILIKE ?", "%"+params.Name+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(params.OrderClause()).
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	// Soft delete; siparişlerce referans verilen ürünler kalıcı silinmez
	result := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
