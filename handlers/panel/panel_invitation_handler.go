package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/formschema"
	"davetiye.store/middlewares"
	"davetiye.store/models"
	"davetiye.store/services"
)

// PanelInvitationHandler kullanıcının kendi davetiyelerini yönetir.
type PanelInvitationHandler struct {
	invitationService services.IInvitationService
	rsvpService       services.IRsvpService
}

// NewPanelInvitationHandler yeni bir PanelInvitationHandler örneği oluşturur.
func NewPanelInvitationHandler(invitationService services.IInvitationService, rsvpService services.IRsvpService) *PanelInvitationHandler {
	return &PanelInvitationHandler{invitationService: invitationService, rsvpService: rsvpService}
}

// ListInvitations kullanıcının tüm davetiyelerini listeler.
func (h *PanelInvitationHandler) ListInvitations(c *fiber.Ctx) error {
	invitations, err := h.invitationService.GetMyInvitations(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		configslog.Log.Error("ListInvitations hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "davetiyeler listelenemedi"})
	}
	return c.JSON(fiber.Map{"invitations": invitations})
}

// GetInvitation tek davetiye detayı döner.
func (h *PanelInvitationHandler) GetInvitation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz davetiye kimliği"})
	}

	invitation, err := h.invitationService.GetInvitationDetails(c.UserContext(), uint(id), middlewares.CurrentUserID(c))
	if err != nil {
		return h.invitationError(c, uint(id), err)
	}
	return c.JSON(invitation)
}

// UpdateFormData davetiyenin kişiselleştirme alanlarını günceller.
// Şema hataları alan adresli bir harita olarak döner.
func (h *PanelInvitationHandler) UpdateFormData(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz davetiye kimliği"})
	}

	var fields map[string]any
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if err := h.invitationService.UpdateFormData(c.UserContext(), uint(id), middlewares.CurrentUserID(c), fields); err != nil {
		var fieldErrs formschema.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"field_errors": fieldErrs})
		}
		return h.invitationError(c, uint(id), err)
	}
	return c.JSON(fiber.Map{"message": "davetiye bilgileri güncellendi"})
}

// UpdateDesign canvas tasarım dokümanını kaydeder.
func (h *PanelInvitationHandler) UpdateDesign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz davetiye kimliği"})
	}

	if err := h.invitationService.UpdateDesign(c.UserContext(), uint(id), middlewares.CurrentUserID(c), c.Body()); err != nil {
		if errors.Is(err, services.ErrInvalidDesignDocument) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return h.invitationError(c, uint(id), err)
	}
	return c.JSON(fiber.Map{"message": "tasarım kaydedildi"})
}

type statusRequest struct {
	Status string `json:"status" form:"status"`
}

// SetStatus davetiyeyi yayına alır ya da yayından kaldırır.
func (h *PanelInvitationHandler) SetStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz davetiye kimliği"})
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	err = h.invitationService.SetStatus(c.UserContext(), uint(id), middlewares.CurrentUserID(c), models.InvitationStatus(req.Status))
	if err != nil {
		if errors.Is(err, services.ErrInvitationUpdateFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "durum ACTIVE ya da INACTIVE olmalıdır"})
		}
		return h.invitationError(c, uint(id), err)
	}
	return c.JSON(fiber.Map{"message": "davetiye durumu güncellendi"})
}

// DeleteInvitation davetiyeyi siler.
func (h *PanelInvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz davetiye kimliği"})
	}

	err = h.invitationService.DeleteInvitation(c.UserContext(), uint(id), middlewares.CurrentUserID(c), middlewares.IsAdmin(c))
	if err != nil {
		return h.invitationError(c, uint(id), err)
	}
	return c.JSON(fiber.Map{"message": "davetiye silindi"})
}

// ListRsvps davetiyenin LCV yanıtlarını listeler; sadece sahibi görür.
func (h *PanelInvitationHandler) ListRsvps(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz davetiye kimliği"})
	}

	rsvps, err := h.rsvpService.ListForInvitation(c.UserContext(), uint(id), middlewares.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrRsvpForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("ListRsvps hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "yanıtlar listelenemedi"})
	}
	return c.JSON(fiber.Map{"rsvps": rsvps})
}

func (h *PanelInvitationHandler) invitationError(c *fiber.Ctx, id uint, err error) error {
	switch {
	case errors.Is(err, services.ErrInvitationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvitationForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("Davetiye işlemi hatası", zap.Uint("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem tamamlanamadı"})
	}
}
