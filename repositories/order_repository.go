package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
)

// IOrderRepository sipariş veritabanı işlemleri için arayüz.
type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Order, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

// OrderRepository IOrderRepository arayüzünü uygular.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository verilen bağlantı ile bir OrderRepository oluşturur.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// NewOrderRepositoryTx transaction içinde çalışan bir kopya döner.
func NewOrderRepositoryTx(tx *gorm.DB) IOrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("Items.Product.DesignTemplate").Preload("User").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("Items.Product.DesignTemplate").Preload("User").
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Order{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Items").Preload("User").
		Order(params.OrderClause()).
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
