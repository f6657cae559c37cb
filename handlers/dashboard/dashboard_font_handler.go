package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/services"
)

// FontHandler admin özel font yönetimi uçları.
type FontHandler struct {
	fontService services.IFontService
}

// NewFontHandler yeni bir FontHandler örneği oluşturur.
func NewFontHandler(fontService services.IFontService) *FontHandler {
	return &FontHandler{fontService: fontService}
}

// ListFonts tüm özel fontları döner. Liste küçüktür, sayfalanmaz.
func (h *FontHandler) ListFonts(c *fiber.Ctx) error {
	fonts, err := h.fontService.GetFonts(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ListFonts hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "fontlar listelenemedi"})
	}
	return c.JSON(fiber.Map{"fonts": fonts})
}

type fontRequest struct {
	DisplayName string `json:"display_name" form:"display_name"`
	Weight      string `json:"weight" form:"weight"`
	Style       string `json:"style" form:"style"`
	AssetURL    string `json:"asset_url" form:"asset_url"`
}

// CreateFont yeni font tanımı kaydeder. AssetURL imzalı yükleme akışından
// dönen public URL'dir.
func (h *FontHandler) CreateFont(c *fiber.Ctx) error {
	var req fontRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	font := &models.CustomFont{
		DisplayName: req.DisplayName,
		Weight:      req.Weight,
		Style:       req.Style,
		AssetURL:    req.AssetURL,
	}
	if err := h.fontService.CreateFont(c.UserContext(), font); err != nil {
		if errors.Is(err, services.ErrFontInvalidInput) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Dashboard - CreateFont hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "font kaydedilemedi"})
	}
	return c.Status(fiber.StatusCreated).JSON(font)
}

// UpdateFont font tanımını günceller.
func (h *FontHandler) UpdateFont(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz font kimliği"})
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if err := h.fontService.UpdateFont(c.UserContext(), uint(id), data); err != nil {
		return h.fontError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "font güncellendi"})
}

// DeleteFont font tanımını siler.
func (h *FontHandler) DeleteFont(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz font kimliği"})
	}

	if err := h.fontService.DeleteFont(c.UserContext(), uint(id)); err != nil {
		return h.fontError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "font silindi"})
}

func (h *FontHandler) fontError(c *fiber.Ctx, id int, err error) error {
	if errors.Is(err, services.ErrFontNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	configslog.Log.Error("Dashboard - font işlemi hatası", zap.Int("id", id), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem tamamlanamadı"})
}
