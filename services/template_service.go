package services

import (
	"context"
	"encoding/json"
	"errors"

	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/repositories"
)

// TemplateServiceError özel servis hataları.
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound        TemplateServiceError = "şablon bulunamadı"
	ErrTemplateInvalidDocument TemplateServiceError = "şablon dokümanı geçerli JSON değil"
	ErrTemplateNameRequired    TemplateServiceError = "şablon adı zorunludur"
	ErrTemplateOperationFailed TemplateServiceError = "şablon işlemi tamamlanamadı"
)

// ITemplateService tasarım şablonu işlemleri için arayüz (admin).
type ITemplateService interface {
	CreateTemplate(ctx context.Context, template *models.DesignTemplate) error
	GetTemplateByID(ctx context.Context, id uint) (*models.DesignTemplate, error)
	GetAllTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateTemplate(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteTemplate(ctx context.Context, id uint) error
}

// TemplateService ITemplateService arayüzünü uygular.
type TemplateService struct {
	repo repositories.ITemplateRepository
}

// NewTemplateService bağımlılıkları ile bir TemplateService oluşturur.
func NewTemplateService(repo repositories.ITemplateRepository) ITemplateService {
	return &TemplateService{repo: repo}
}

// CreateTemplate şablonu kaydeder. Doküman canvas kütüphanesine aittir,
// sadece JSON geçerliliği kontrol edilir.
func (s *TemplateService) CreateTemplate(ctx context.Context, template *models.DesignTemplate) error {
	if template == nil || template.Name == "" {
		return ErrTemplateNameRequired
	}
	if len(template.Document) == 0 || !json.Valid(template.Document) {
		return ErrTemplateInvalidDocument
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return ErrTemplateOperationFailed
	}
	return nil
}

func (s *TemplateService) GetTemplateByID(ctx context.Context, id uint) (*models.DesignTemplate, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) GetAllTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	templates, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data:       templates,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: queryparams.CalculateTotalPages(total, params.PerPage),
	}, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, id uint, data map[string]interface{}) error {
	if doc, ok := data["document"].(json.RawMessage); ok && !json.Valid(doc) {
		return ErrTemplateInvalidDocument
	}
	if err := s.repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return ErrTemplateOperationFailed
	}
	return nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return ErrTemplateOperationFailed
	}
	return nil
}
