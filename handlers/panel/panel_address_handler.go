package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/middlewares"
	"davetiye.store/models"
	"davetiye.store/services"
)

// PanelAddressHandler kullanıcının teslimat adreslerini yönetir.
type PanelAddressHandler struct {
	addressService services.IAddressService
}

// NewPanelAddressHandler yeni bir PanelAddressHandler örneği oluşturur.
func NewPanelAddressHandler(addressService services.IAddressService) *PanelAddressHandler {
	return &PanelAddressHandler{addressService: addressService}
}

type addressRequest struct {
	Title    string `json:"title" form:"title"`
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
	Line1    string `json:"line1" form:"line1"`
	Line2    string `json:"line2" form:"line2"`
	City     string `json:"city" form:"city"`
	ZipCode  string `json:"zip_code" form:"zip_code"`
	Country  string `json:"country" form:"country"`
}

// ListAddresses kullanıcının kayıtlı adreslerini döner.
func (h *PanelAddressHandler) ListAddresses(c *fiber.Ctx) error {
	addresses, err := h.addressService.GetMyAddresses(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		configslog.Log.Error("ListAddresses hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "adresler listelenemedi"})
	}
	return c.JSON(fiber.Map{"addresses": addresses})
}

// CreateAddress yeni adres kaydeder; kullanıcı başına en fazla iki adres.
func (h *PanelAddressHandler) CreateAddress(c *fiber.Ctx) error {
	var req addressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	address := &models.Address{
		UserID:   middlewares.CurrentUserID(c),
		Title:    req.Title,
		FullName: req.FullName,
		Phone:    req.Phone,
		Line1:    req.Line1,
		Line2:    req.Line2,
		City:     req.City,
		ZipCode:  req.ZipCode,
		Country:  req.Country,
	}
	if err := h.addressService.CreateAddress(c.UserContext(), address); err != nil {
		switch {
		case errors.Is(err, services.ErrAddressInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrAddressLimitReached):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("CreateAddress hatası", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "adres kaydedilemedi"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// UpdateAddress mevcut adresi günceller.
func (h *PanelAddressHandler) UpdateAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz adres kimliği"})
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	delete(data, "user_id") // sahiplik değiştirilemez

	if err := h.addressService.UpdateAddress(c.UserContext(), uint(id), middlewares.CurrentUserID(c), data); err != nil {
		return h.addressError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "adres güncellendi"})
}

// DeleteAddress adresi siler.
func (h *PanelAddressHandler) DeleteAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz adres kimliği"})
	}

	if err := h.addressService.DeleteAddress(c.UserContext(), uint(id), middlewares.CurrentUserID(c)); err != nil {
		return h.addressError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "adres silindi"})
}

func (h *PanelAddressHandler) addressError(c *fiber.Ctx, id int, err error) error {
	switch {
	case errors.Is(err, services.ErrAddressNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrAddressForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("Adres işlemi hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem tamamlanamadı"})
	}
}
