package services

import (
	"context"
	"errors"
	"net/url"

	"davetiye.store/models"
	"davetiye.store/repositories"
)

// FontServiceError özel servis hataları.
type FontServiceError string

func (e FontServiceError) Error() string { return string(e) }

const (
	ErrFontNotFound        FontServiceError = "font bulunamadı"
	ErrFontInvalidInput    FontServiceError = "geçersiz font verisi"
	ErrFontOperationFailed FontServiceError = "font işlemi tamamlanamadı"
)

// IFontService özel font işlemleri için arayüz. Fontlar tema/canvas
// render'ından önce istemcinin font kaydına yüklenir.
type IFontService interface {
	CreateFont(ctx context.Context, font *models.CustomFont) error
	GetFonts(ctx context.Context) ([]models.CustomFont, error)
	UpdateFont(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteFont(ctx context.Context, id uint) error
}

// FontService IFontService arayüzünü uygular.
type FontService struct {
	repo repositories.IFontRepository
}

// NewFontService bağımlılıkları ile bir FontService oluşturur.
func NewFontService(repo repositories.IFontRepository) IFontService {
	return &FontService{repo: repo}
}

func (s *FontService) CreateFont(ctx context.Context, font *models.CustomFont) error {
	if font == nil || font.DisplayName == "" {
		return ErrFontInvalidInput
	}
	if u, err := url.Parse(font.AssetURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrFontInvalidInput
	}
	if err := s.repo.Create(ctx, font); err != nil {
		return ErrFontOperationFailed
	}
	return nil
}

func (s *FontService) GetFonts(ctx context.Context) ([]models.CustomFont, error) {
	return s.repo.FindAll(ctx)
}

func (s *FontService) UpdateFont(ctx context.Context, id uint, data map[string]interface{}) error {
	if err := s.repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFontNotFound
		}
		return ErrFontOperationFailed
	}
	return nil
}

func (s *FontService) DeleteFont(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFontNotFound
		}
		return ErrFontOperationFailed
	}
	return nil
}
