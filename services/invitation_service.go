package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"davetiye.store/configs/configslog"
	"davetiye.store/formschema"
	"davetiye.store/models"
	"davetiye.store/repositories"
	"davetiye.store/themes"
)

// InvitationServiceError özel servis hataları.
type InvitationServiceError string

func (e InvitationServiceError) Error() string { return string(e) }

const (
	ErrInvitationNotFound       InvitationServiceError = "davetiye bulunamadı"
	ErrInvitationForbidden      InvitationServiceError = "bu işlem için yetkiniz yok"
	ErrInvitationUpdateFailed   InvitationServiceError = "davetiye güncellenemedi"
	ErrInvitationDeletionFailed InvitationServiceError = "davetiye silinemedi"
	ErrInvalidDesignDocument    InvitationServiceError = "tasarım dokümanı geçerli JSON değil"
)

// IInvitationService davetiye işlemleri için arayüz.
type IInvitationService interface {
	GetMyInvitations(ctx context.Context, userID uint) ([]models.UserInvitation, error)
	GetInvitationDetails(ctx context.Context, id uint, requestingUserID uint) (*models.UserInvitation, error)
	GetPublicBySubdomain(ctx context.Context, subdomain string) (*models.UserInvitation, error)
	RenderPublicPage(ctx context.Context, subdomain string) (themes.Page, error)
	UpdateFormData(ctx context.Context, id uint, requestingUserID uint, fields map[string]any) error
	UpdateDesign(ctx context.Context, id uint, requestingUserID uint, document json.RawMessage) error
	SetStatus(ctx context.Context, id uint, requestingUserID uint, status models.InvitationStatus) error
	DeleteInvitation(ctx context.Context, id uint, requestingUserID uint, isAdmin bool) error
	GenerateSubdomain(ctx context.Context, base string) (string, error)
}

// InvitationService IInvitationService arayüzünü uygular.
type InvitationService struct {
	repo repositories.IInvitationRepository
}

// NewInvitationService bağımlılıkları ile bir InvitationService oluşturur.
func NewInvitationService(repo repositories.IInvitationRepository) IInvitationService {
	return &InvitationService{repo: repo}
}

func (s *InvitationService) GetMyInvitations(ctx context.Context, userID uint) ([]models.UserInvitation, error) {
	return s.repo.FindAllByUserID(ctx, userID)
}

// GetInvitationDetails davetiyeyi sahibine döner.
func (s *InvitationService) GetInvitationDetails(ctx context.Context, id uint, requestingUserID uint) (*models.UserInvitation, error) {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	if invitation.UserID != requestingUserID {
		return nil, ErrInvitationForbidden
	}
	return invitation, nil
}

// GetPublicBySubdomain public sayfa için davetiyeyi getirir.
// Kayıt yoksa ya da pasifse "bulunamadı" döner; ikisi ziyaretçi için aynıdır.
func (s *InvitationService) GetPublicBySubdomain(ctx context.Context, subdomain string) (*models.UserInvitation, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if subdomain == "" {
		return nil, ErrInvitationNotFound
	}
	invitation, err := s.repo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	if invitation.Status != models.InvitationStatusActive {
		return nil, ErrInvitationNotFound
	}
	return invitation, nil
}

// RenderPublicPage render hattı: davetiyeyi getir, form verisini toleranslı
// çöz, ürünün tema kimliğini çıkar ve renderer'a delege et. 404 dışında iş
// kuralı yoktur; eksik/bozuk veri ziyaretçiye asla hata olarak dönmez.
func (s *InvitationService) RenderPublicPage(ctx context.Context, subdomain string) (themes.Page, error) {
	invitation, err := s.GetPublicBySubdomain(ctx, subdomain)
	if err != nil {
		return themes.Page{}, err
	}

	env := formschema.DecodeEnvelope(invitation.FormData)

	themeID := ""
	if invitation.OrderItem.Product.ThemeID != nil {
		themeID = *invitation.OrderItem.Product.ThemeID
	}

	renderer, degraded := themes.Resolve(themeID)
	if degraded && themeID != "" {
		configslog.Log.Warn("Davetiye default tasarım ile sunuluyor",
			zap.String("subdomain", subdomain), zap.String("theme_id", themeID))
	}

	page := renderer.Render(themes.Data{
		InvitationID: invitation.ID,
		Subdomain:    invitation.Subdomain,
		Fields:       env.Fields,
	})
	return page, nil
}

// UpdateFormData form verisini temaya ait şemayla doğrulayıp kaydeder.
// Tema kimliği yoksa ya da kayıtsızsa şema yoktur, serbest veri kabul
// edilir. Doğrulama hataları alan adresli döner ve hiçbir şey kaydedilmez.
func (s *InvitationService) UpdateFormData(ctx context.Context, id uint, requestingUserID uint, fields map[string]any) error {
	invitation, err := s.GetInvitationDetails(ctx, id, requestingUserID)
	if err != nil {
		return err
	}

	themeID := ""
	if invitation.OrderItem.Product.ThemeID != nil {
		themeID = *invitation.OrderItem.Product.ThemeID
	}

	if schema := formschema.Resolve(themeID); schema != nil {
		if errs := schema.Validate(fields); errs != nil {
			return errs
		}
	}

	raw, err := formschema.NewEnvelope(themeID, fields).Encode()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvitationUpdateFailed, err)
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"form_data": datatypes.JSON(raw)}); err != nil {
		configslog.Log.Error("Form verisi güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return ErrInvitationUpdateFailed
	}
	return nil
}

// UpdateDesign canvas dokümanını kaydeder. Doküman opaktır; sadece
// geçerli JSON olduğu kontrol edilir, içeriğine bakılmaz.
func (s *InvitationService) UpdateDesign(ctx context.Context, id uint, requestingUserID uint, document json.RawMessage) error {
	if _, err := s.GetInvitationDetails(ctx, id, requestingUserID); err != nil {
		return err
	}
	if len(document) > 0 && !json.Valid(document) {
		return ErrInvalidDesignDocument
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"design_data": datatypes.JSON(document)}); err != nil {
		configslog.Log.Error("Tasarım dokümanı güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return ErrInvitationUpdateFailed
	}
	return nil
}

// SetStatus davetiyeyi yayına alır/yayından kaldırır.
func (s *InvitationService) SetStatus(ctx context.Context, id uint, requestingUserID uint, status models.InvitationStatus) error {
	if status != models.InvitationStatusActive && status != models.InvitationStatusInactive {
		return ErrInvitationUpdateFailed
	}
	if _, err := s.GetInvitationDetails(ctx, id, requestingUserID); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, map[string]interface{}{"status": status})
}

// DeleteInvitation davetiyeyi siler; sadece sahibi ya da admin yapabilir.
func (s *InvitationService) DeleteInvitation(ctx context.Context, id uint, requestingUserID uint, isAdmin bool) error {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	if !isAdmin && invitation.UserID != requestingUserID {
		return ErrInvitationForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrInvitationDeletionFailed
	}
	return nil
}

// GenerateSubdomain verilen tabandan benzersiz bir public slug üretir.
// Çakışma varsa rastgele sonek denenir.
func (s *InvitationService) GenerateSubdomain(ctx context.Context, base string) (string, error) {
	slug := slugify(base)
	if slug == "" {
		slug = "davetiye"
	}

	candidate := slug
	for i := 0; i < 5; i++ {
		exists, err := s.repo.SubdomainExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8])
	}
	return "", fmt.Errorf("benzersiz subdomain üretilemedi: %s", slug)
}

// slugify subdomain'e uygun küçük harf/çizgi formuna indirger.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > 40 {
		out = out[:40]
	}
	return strings.Trim(out, "-")
}
