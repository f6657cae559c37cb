package repositories

import (
	"context"

	"gorm.io/gorm"

	"davetiye.store/models"
)

// IRsvpRepository RSVP veritabanı işlemleri için arayüz.
type IRsvpRepository interface {
	Create(ctx context.Context, rsvp *models.Rsvp) error
	FindByInvitationID(ctx context.Context, invitationID uint) ([]models.Rsvp, error)
}

// RsvpRepository IRsvpRepository arayüzünü uygular.
type RsvpRepository struct {
	db *gorm.DB
}

// NewRsvpRepository verilen bağlantı ile bir RsvpRepository oluşturur.
func NewRsvpRepository(db *gorm.DB) IRsvpRepository {
	return &RsvpRepository{db: db}
}

// Create yeni bir RSVP kaydı ekler. Tekilleştirme ya da kapasite kontrolü
// yoktur; eşzamanlı kayıtlar bağımsız insert'lerdir.
func (r *RsvpRepository) Create(ctx context.Context, rsvp *models.Rsvp) error {
	return r.db.WithContext(ctx).Create(rsvp).Error
}

// FindByInvitationID davetiyeye ait tüm RSVP'leri yeniden-eskiye döner.
// Sayfalama yoktur, tam liste döner.
func (r *RsvpRepository) FindByInvitationID(ctx context.Context, invitationID uint) ([]models.Rsvp, error) {
	var rsvps []models.Rsvp
	err := r.db.WithContext(ctx).
		Where("invitation_id = ?", invitationID).
		Order("created_at desc").
		Find(&rsvps).Error
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}
