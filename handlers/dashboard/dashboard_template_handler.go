package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/services"
)

// TemplateHandler admin tasarım şablonu yönetimi uçları.
type TemplateHandler struct {
	templateService services.ITemplateService
}

// NewTemplateHandler yeni bir TemplateHandler örneği oluşturur.
func NewTemplateHandler(templateService services.ITemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// ListTemplates şablonları sayfalı listeler.
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.templateService.GetAllTemplatesPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListTemplates hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "şablonlar listelenemedi"})
	}
	return c.JSON(result)
}

// GetTemplate tek şablon döner; Document olduğu gibi aktarılır.
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz şablon kimliği"})
	}

	template, err := h.templateService.GetTemplateByID(c.UserContext(), uint(id))
	if err != nil {
		return h.templateError(c, id, err)
	}
	return c.JSON(template)
}

type templateRequest struct {
	Name     string          `json:"name"`
	Document json.RawMessage `json:"document"`
}

// CreateTemplate yeni şablon kaydeder. Document opak JSON'dur, içeriği
// yorumlanmaz.
func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	var req templateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	template := &models.DesignTemplate{
		Name:     req.Name,
		Document: datatypes.JSON(req.Document),
	}
	if err := h.templateService.CreateTemplate(c.UserContext(), template); err != nil {
		return h.templateError(c, 0, err)
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

// UpdateTemplate şablonu günceller.
func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz şablon kimliği"})
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if err := h.templateService.UpdateTemplate(c.UserContext(), uint(id), data); err != nil {
		return h.templateError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "şablon güncellendi"})
}

// DeleteTemplate şablonu siler; ürünlerdeki referans SET NULL olur.
func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz şablon kimliği"})
	}

	if err := h.templateService.DeleteTemplate(c.UserContext(), uint(id)); err != nil {
		return h.templateError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "şablon silindi"})
}

func (h *TemplateHandler) templateError(c *fiber.Ctx, id int, err error) error {
	switch {
	case errors.Is(err, services.ErrTemplateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrTemplateNameRequired), errors.Is(err, services.ErrTemplateInvalidDocument):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("Dashboard - şablon işlemi hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem tamamlanamadı"})
	}
}
