package services

import (
	"context"
	"errors"

	"davetiye.store/models"
	"davetiye.store/repositories"
)

// CartServiceError özel servis hataları.
type CartServiceError string

func (e CartServiceError) Error() string { return string(e) }

const (
	ErrCartProductNotFound CartServiceError = "ürün bulunamadı ya da satışta değil"
	ErrCartInvalidQuantity CartServiceError = "miktar en az 1 olmalıdır"
	ErrCartItemNotFound    CartServiceError = "sepette böyle bir ürün yok"
	ErrCartOperationFailed CartServiceError = "sepet işlemi tamamlanamadı"
)

// ICartService sepet işlemleri için arayüz.
type ICartService interface {
	GetCart(ctx context.Context, userID uint) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uint) error
}

// CartService ICartService arayüzünü uygular.
type CartService struct {
	repo        repositories.ICartRepository
	productRepo repositories.IProductRepository
}

// NewCartService bağımlılıkları ile bir CartService oluşturur.
func NewCartService(repo repositories.ICartRepository, productRepo repositories.IProductRepository) ICartService {
	return &CartService{repo: repo, productRepo: productRepo}
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*models.Cart, error) {
	return s.repo.FindOrCreateByUserID(ctx, userID)
}

// AddItem aktif bir ürünü kullanıcının sepetine ekler.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrCartInvalidQuantity
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCartProductNotFound
		}
		return err
	}
	if !product.IsActive {
		return ErrCartProductNotFound
	}

	cart, err := s.repo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return ErrCartOperationFailed
	}
	if err := s.repo.AddItem(ctx, cart.ID, productID, quantity); err != nil {
		return ErrCartOperationFailed
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	cart, err := s.repo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return ErrCartOperationFailed
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCartItemNotFound
		}
		return ErrCartOperationFailed
	}
	return nil
}
