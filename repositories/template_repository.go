package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
)

// ITemplateRepository tasarım şablonu veritabanı işlemleri için arayüz.
type ITemplateRepository interface {
	Create(ctx context.Context, template *models.DesignTemplate) error
	FindByID(ctx context.Context, id uint) (*models.DesignTemplate, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.DesignTemplate, int64, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// TemplateRepository ITemplateRepository arayüzünü uygular.
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository verilen bağlantı ile bir TemplateRepository oluşturur.
func NewTemplateRepository(db *gorm.DB) ITemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, template *models.DesignTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uint) (*models.DesignTemplate, error) {
	var template models.DesignTemplate
	err := r.db.WithContext(ctx).First(&template, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.DesignTemplate, int64, error) {
	var templates []models.DesignTemplate
	var total int64

	q := r.db.WithContext(ctx).Model(&models.DesignTemplate{})
	if params.Name != "" {
		q = q.Where("name ILIKE ?", "%"+params.Name+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order(params.OrderClause()).
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

func (r *TemplateRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.DesignTemplate{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DesignTemplate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
