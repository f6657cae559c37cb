package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/repositories"
	"davetiye.store/themes"
)

// ProductServiceError özel servis hataları.
type ProductServiceError string

func (e ProductServiceError) Error() string { return string(e) }

const (
	ErrProductNotFound       ProductServiceError = "ürün bulunamadı"
	ErrProductInvalidInput   ProductServiceError = "geçersiz ürün verisi"
	ErrProductUnknownTheme   ProductServiceError = "tanımsız tema kimliği"
	ErrProductCreationFailed ProductServiceError = "ürün oluşturulamadı"
	ErrProductUpdateFailed   ProductServiceError = "ürün güncellenemedi"
	ErrProductDeletionFailed ProductServiceError = "ürün silinemedi"
)

// IProductService ürün işlemleri için arayüz.
type IProductService interface {
	GetProducts(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
	GetAllProductsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteProduct(ctx context.Context, id uint) error
}

// ProductService IProductService arayüzünü uygular. İki public okuma
// sorgusu kısa sabit süreli bir cache'in arkasındadır; yazmada
// invalidation yoktur, TTL kadar bayatlık kabul edilir. Bu bir doğruluk
// mekanizması değildir.
type ProductService struct {
	repo repositories.IProductRepository

	cacheTTL time.Duration
	mu       sync.Mutex
	cache    map[string]cacheEntry
	now      func() time.Time
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewProductService bağımlılıkları ile bir ProductService oluşturur.
func NewProductService(repo repositories.IProductRepository, cacheTTL time.Duration) IProductService {
	return &ProductService{
		repo:     repo,
		cacheTTL: cacheTTL,
		cache:    make(map[string]cacheEntry),
		now:      time.Now,
	}
}

func (s *ProductService) cacheGet(key string) (any, bool) {
	if s.cacheTTL <= 0 {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[key]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (s *ProductService) cacheSet(key string, value any) {
	if s.cacheTTL <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{value: value, expiresAt: s.now().Add(s.cacheTTL)}
}

// GetProducts müşteri vitrini için ürünleri listeler (cache'li).
func (s *ProductService) GetProducts(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	key := fmt.Sprintf("products:%s:%t", filter.Category, filter.OnlyActive)
	if v, ok := s.cacheGet(key); ok {
		return v.([]models.Product), nil
	}
	products, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.cacheSet(key, products)
	return products, nil
}

// GetProductByID tek ürünü döner (cache'li).
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	key := fmt.Sprintf("product:%d", id)
	if v, ok := s.cacheGet(key); ok {
		return v.(*models.Product), nil
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	s.cacheSet(key, product)
	return product, nil
}

// GetAllProductsPaginated admin listesi; cache'lenmez.
func (s *ProductService) GetAllProductsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	products, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data:       products,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: queryparams.CalculateTotalPages(total, params.PerPage),
	}, nil
}

// CreateProduct admin ürün oluşturma. Tema kimliği verilmişse kayıtlı
// renderer kümesinde olmalıdır; vitrine hiç render edilemeyecek bir tema
// bağlanamaz.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return ErrProductCreationFailed
	}
	return nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, data map[string]interface{}) error {
	if themeID, ok := data["theme_id"].(string); ok && themeID != "" {
		if !registeredTheme(themeID) {
			return ErrProductUnknownTheme
		}
	}
	if err := s.repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return ErrProductUpdateFailed
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return ErrProductDeletionFailed
	}
	return nil
}

func validateProduct(product *models.Product) error {
	if product == nil || product.Name == "" {
		return fmt.Errorf("%w: ürün adı zorunludur", ErrProductInvalidInput)
	}
	if !product.Category.Valid() {
		return fmt.Errorf("%w: kategori DIGITAL ya da PHYSICAL olmalıdır", ErrProductInvalidInput)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: fiyat negatif olamaz", ErrProductInvalidInput)
	}
	if product.ThemeID != nil && *product.ThemeID != "" && !registeredTheme(*product.ThemeID) {
		return ErrProductUnknownTheme
	}
	return nil
}

func registeredTheme(themeID string) bool {
	for _, id := range themes.Registered() {
		if id == themeID {
			return true
		}
	}
	return false
}
