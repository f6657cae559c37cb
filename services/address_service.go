package services

import (
	"context"
	"errors"

	"davetiye.store/models"
	"davetiye.store/repositories"
)

// AddressServiceError özel servis hataları.
type AddressServiceError string

func (e AddressServiceError) Error() string { return string(e) }

const (
	ErrAddressNotFound     AddressServiceError = "adres bulunamadı"
	ErrAddressInvalidInput AddressServiceError = "geçersiz adres verisi"
	ErrAddressLimitReached AddressServiceError = "en fazla iki adres kaydedebilirsiniz"
	ErrAddressForbidden    AddressServiceError = "bu adres üzerinde yetkiniz yok"
)

// maxAddressesPerUser kullanıcı başına adres sınırı. UI düzeyinde bir
// sınırdır, veritabanı kısıtı değildir.
const maxAddressesPerUser = 2

// IAddressService adres işlemleri için arayüz.
type IAddressService interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetMyAddresses(ctx context.Context, userID uint) ([]models.Address, error)
	UpdateAddress(ctx context.Context, id uint, userID uint, data map[string]interface{}) error
	DeleteAddress(ctx context.Context, id uint, userID uint) error
}

// AddressService IAddressService arayüzünü uygular.
type AddressService struct {
	repo repositories.IAddressRepository
}

// NewAddressService bağımlılıkları ile bir AddressService oluşturur.
func NewAddressService(repo repositories.IAddressRepository) IAddressService {
	return &AddressService{repo: repo}
}

func (s *AddressService) CreateAddress(ctx context.Context, address *models.Address) error {
	if address == nil || address.UserID == 0 || address.FullName == "" || address.Line1 == "" || address.City == "" {
		return ErrAddressInvalidInput
	}
	count, err := s.repo.CountByUserID(ctx, address.UserID)
	if err != nil {
		return err
	}
	if count >= maxAddressesPerUser {
		return ErrAddressLimitReached
	}
	return s.repo.Create(ctx, address)
}

func (s *AddressService) GetMyAddresses(ctx context.Context, userID uint) ([]models.Address, error) {
	return s.repo.FindAllByUserID(ctx, userID)
}

func (s *AddressService) UpdateAddress(ctx context.Context, id uint, userID uint, data map[string]interface{}) error {
	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	if address.UserID != userID {
		return ErrAddressForbidden
	}
	return s.repo.Update(ctx, id, data)
}

func (s *AddressService) DeleteAddress(ctx context.Context, id uint, userID uint) error {
	address, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	if address.UserID != userID {
		return ErrAddressForbidden
	}
	return s.repo.Delete(ctx, id)
}
