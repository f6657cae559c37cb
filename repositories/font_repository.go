package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"davetiye.store/models"
)

// IFontRepository özel font veritabanı işlemleri için arayüz.
type IFontRepository interface {
	Create(ctx context.Context, font *models.CustomFont) error
	FindByID(ctx context.Context, id uint) (*models.CustomFont, error)
	FindAll(ctx context.Context) ([]models.CustomFont, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// FontRepository IFontRepository arayüzünü uygular.
type FontRepository struct {
	db *gorm.DB
}

// NewFontRepository verilen bağlantı ile bir FontRepository oluşturur.
func NewFontRepository(db *gorm.DB) IFontRepository {
	return &FontRepository{db: db}
}

func (r *FontRepository) Create(ctx context.Context, font *models.CustomFont) error {
	return r.db.WithContext(ctx).Create(font).Error
}

func (r *FontRepository) FindByID(ctx context.Context, id uint) (*models.CustomFont, error) {
	var font models.CustomFont
	err := r.db.WithContext(ctx).First(&font, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &font, nil
}

// FindAll tüm fontları döner. Liste küçük ve istemci tarafında
// topluca yüklendiği için sayfalama yoktur.
func (r *FontRepository) FindAll(ctx context.Context) ([]models.CustomFont, error) {
	var fonts []models.CustomFont
	err := r.db.WithContext(ctx).Order("display_name asc").Find(&fonts).Error
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

func (r *FontRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.CustomFont{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FontRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomFont{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
