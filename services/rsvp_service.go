package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/repositories"
)

// RsvpServiceError özel servis hataları.
type RsvpServiceError string

func (e RsvpServiceError) Error() string { return string(e) }

const (
	ErrRsvpNameRequired   RsvpServiceError = "misafir adı zorunludur"
	ErrRsvpGuestCount     RsvpServiceError = "misafir sayısı en az 1 olmalıdır"
	ErrRsvpInvalidStatus  RsvpServiceError = "geçersiz LCV durumu"
	ErrRsvpCreationFailed RsvpServiceError = "LCV yanıtı kaydedilemedi"
	// ErrRsvpForbidden hem "davetiye yok" hem "sahibi değil" için döner.
	// Kasıtlı: iki durumu ayırmak, davetiyenin varlığını sahip olmayan
	// birine sızdırırdı.
	ErrRsvpForbidden RsvpServiceError = "bu davetiyenin yanıtlarını görme yetkiniz yok"
)

// IRsvpService LCV işlemleri için arayüz.
type IRsvpService interface {
	CreateRsvp(ctx context.Context, invitationID uint, guestName string, guestCount int, status models.RsvpStatus, message string) (*models.Rsvp, error)
	ListForInvitation(ctx context.Context, invitationID uint, requestingUserID uint) ([]models.Rsvp, error)
}

// RsvpService IRsvpService arayüzünü uygular.
type RsvpService struct {
	repo           repositories.IRsvpRepository
	invitationRepo repositories.IInvitationRepository
}

// NewRsvpService bağımlılıkları ile bir RsvpService oluşturur.
func NewRsvpService(repo repositories.IRsvpRepository, invitationRepo repositories.IInvitationRepository) IRsvpService {
	return &RsvpService{repo: repo, invitationRepo: invitationRepo}
}

// CreateRsvp linki bilen herhangi bir ziyaretçinin yanıtını kaydeder.
// Kimlik doğrulama yoktur; aynı davetiyeye birden fazla yanıt serbesttir,
// kapasite kontrolü yapılmaz.
func (s *RsvpService) CreateRsvp(ctx context.Context, invitationID uint, guestName string, guestCount int, status models.RsvpStatus, message string) (*models.Rsvp, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrRsvpNameRequired
	}
	if guestCount < 1 {
		return nil, ErrRsvpGuestCount
	}
	if !status.Valid() {
		return nil, ErrRsvpInvalidStatus
	}

	rsvp := &models.Rsvp{
		InvitationID: invitationID,
		GuestName:    guestName,
		GuestCount:   guestCount,
		Status:       status,
		Message:      message,
	}
	if err := s.repo.Create(ctx, rsvp); err != nil {
		configslog.Log.Error("RSVP kaydedilemedi",
			zap.Uint("invitationID", invitationID), zap.Error(err))
		return nil, ErrRsvpCreationFailed
	}
	return rsvp, nil
}

// ListForInvitation davetiyenin tüm yanıtlarını yeniden-eskiye döner.
// Sahiplik kontrolü her şeyden önce çalışır; kontrol geçilmeden hiçbir
// veri dönülmez.
func (s *RsvpService) ListForInvitation(ctx context.Context, invitationID uint, requestingUserID uint) ([]models.Rsvp, error) {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// "Bulunamadı" da yetki hatası olarak döner, bilgi sızdırmaz
			return nil, ErrRsvpForbidden
		}
		return nil, err
	}
	if invitation.UserID != requestingUserID {
		return nil, ErrRsvpForbidden
	}

	return s.repo.FindByInvitationID(ctx, invitationID)
}
