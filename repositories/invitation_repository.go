package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"davetiye.store/models"
)

// IInvitationRepository davetiye veritabanı işlemleri için arayüz.
type IInvitationRepository interface {
	Create(ctx context.Context, invitation *models.UserInvitation) error
	FindByID(ctx context.Context, id uint) (*models.UserInvitation, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*models.UserInvitation, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.UserInvitation, error)
	SubdomainExists(ctx context.Context, subdomain string) (bool, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// InvitationRepository IInvitationRepository arayüzünü uygular.
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository verilen bağlantı ile bir InvitationRepository oluşturur.
func NewInvitationRepository(db *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: db}
}

// NewInvitationRepositoryTx transaction içinde çalışan bir kopya döner.
func NewInvitationRepositoryTx(tx *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: tx}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *models.UserInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uint) (*models.UserInvitation, error) {
	var invitation models.UserInvitation
	err := r.db.WithContext(ctx).
		Preload("OrderItem").Preload("OrderItem.Product").
		First(&invitation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.UserInvitation, error) {
	var invitation models.UserInvitation
	err := r.db.WithContext(ctx).
		Preload("OrderItem").Preload("OrderItem.Product").
		Where("subdomain = ?", subdomain).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.UserInvitation, error) {
	var invitations []models.UserInvitation
	err := r.db.WithContext(ctx).
		Preload("OrderItem").Preload("OrderItem.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepository) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserInvitation{}).
		Where("subdomain = ?", subdomain).Count(&count).Error
	return count > 0, err
}

func (r *InvitationRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.UserInvitation{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvitationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UserInvitation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
