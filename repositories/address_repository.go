package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"davetiye.store/models"
)

// IAddressRepository adres veritabanı işlemleri için arayüz.
type IAddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	FindByID(ctx context.Context, id uint) (*models.Address, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Address, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// AddressRepository IAddressRepository arayüzünü uygular.
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository verilen bağlantı ile bir AddressRepository oluşturur.
func NewAddressRepository(db *gorm.DB) IAddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *AddressRepository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).First(&address, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *AddressRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AddressRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Address{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Address{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
