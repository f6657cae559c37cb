package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"davetiye.store/models"
)

// ICartRepository sepet veritabanı işlemleri için arayüz.
type ICartRepository interface {
	FindOrCreateByUserID(ctx context.Context, userID uint) (*models.Cart, error)
	AddItem(ctx context.Context, cartID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID uint) error
	ClearItems(ctx context.Context, cartID uint) error
}

// CartRepository ICartRepository arayüzünü uygular.
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository verilen bağlantı ile bir CartRepository oluşturur.
func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

// NewCartRepositoryTx transaction içinde çalışan bir kopya döner.
func NewCartRepositoryTx(tx *gorm.DB) ICartRepository {
	return &CartRepository{db: tx}
}

func (r *CartRepository) FindOrCreateByUserID(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem sepete kalem ekler; aynı ürün zaten varsa miktarı artırır.
func (r *CartRepository) AddItem(ctx context.Context, cartID, productID uint, quantity int) error {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&item).
			Update("quantity", item.Quantity+quantity).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	return r.db.WithContext(ctx).Create(&item).Error
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartRepository) ClearItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
