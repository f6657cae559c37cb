package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davetiye.store/models"
)

func validAddress(userID uint) *models.Address {
	return &models.Address{
		UserID:   userID,
		FullName: "Ayşe Yılmaz",
		Line1:    "Bağdat Cad. No:1",
		City:     "İstanbul",
	}
}

func TestCreateAddressLimit(t *testing.T) {
	ctx := context.Background()
	service := NewAddressService(newFakeAddressRepo())

	require.NoError(t, service.CreateAddress(ctx, validAddress(1)))
	require.NoError(t, service.CreateAddress(ctx, validAddress(1)))

	// Üçüncü adres sınırı aşar
	err := service.CreateAddress(ctx, validAddress(1))
	assert.ErrorIs(t, err, ErrAddressLimitReached)

	// Sınır kullanıcı başınadır
	assert.NoError(t, service.CreateAddress(ctx, validAddress(2)))
}

func TestCreateAddressValidation(t *testing.T) {
	ctx := context.Background()
	service := NewAddressService(newFakeAddressRepo())

	address := validAddress(1)
	address.City = ""
	assert.ErrorIs(t, service.CreateAddress(ctx, address), ErrAddressInvalidInput)
}

func TestAddressOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAddressRepo()
	service := NewAddressService(repo)
	require.NoError(t, service.CreateAddress(ctx, validAddress(1)))

	assert.ErrorIs(t, service.UpdateAddress(ctx, 1, 99, map[string]interface{}{"city": "Ankara"}), ErrAddressForbidden)
	assert.ErrorIs(t, service.DeleteAddress(ctx, 1, 99), ErrAddressForbidden)
	assert.NoError(t, service.DeleteAddress(ctx, 1, 1))
	assert.ErrorIs(t, service.DeleteAddress(ctx, 1, 1), ErrAddressNotFound)
}
