package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/services"
)

// InvitationHandler public davetiye sayfası ve LCV isteklerini yönetir.
// Bu uçlarda kimlik doğrulama yoktur; linki bilen herkes erişir.
type InvitationHandler struct {
	invitationService services.IInvitationService
	rsvpService       services.IRsvpService
}

// NewInvitationHandler yeni bir InvitationHandler örneği oluşturur.
func NewInvitationHandler(invitationService services.IInvitationService, rsvpService services.IRsvpService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService, rsvpService: rsvpService}
}

// ShowInvitation gelen :subdomain parametresine göre davetiye sayfasını
// render eder. Render hattı hata üretmez; davetiye yoksa 404 döner.
func (h *InvitationHandler) ShowInvitation(c *fiber.Ctx) error {
	subdomain := c.Params("subdomain")

	page, err := h.invitationService.RenderPublicPage(c.UserContext(), subdomain)
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			return h.renderNotFound(c, "Davetiye Bulunamadı")
		}
		configslog.Log.Error("ShowInvitation: render hattı hatası",
			zap.String("subdomain", subdomain), zap.Error(err))
		return h.renderError(c, "Davetiye yüklenirken bir sorun oluştu.")
	}

	bind := fiber.Map{}
	for k, v := range page.Bind {
		bind[k] = v
	}
	bind["Subdomain"] = subdomain
	return c.Render(page.Template, bind, "layouts/public_layout")
}

// rsvpRequest LCV form gövdesi.
type rsvpRequest struct {
	GuestName  string `json:"guest_name" form:"guest_name"`
	GuestCount int    `json:"guest_count" form:"guest_count"`
	Status     string `json:"status" form:"status"`
	Message    string `json:"message" form:"message"`
}

// SubmitRsvp davetiye sayfasındaki LCV formunu işler.
func (h *InvitationHandler) SubmitRsvp(c *fiber.Ctx) error {
	subdomain := c.Params("subdomain")

	invitation, err := h.invitationService.GetPublicBySubdomain(c.UserContext(), subdomain)
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "davetiye bulunamadı"})
		}
		configslog.Log.Error("SubmitRsvp: davetiye sorgusu hatası",
			zap.String("subdomain", subdomain), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "bir sorun oluştu"})
	}

	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	rsvp, err := h.rsvpService.CreateRsvp(c.UserContext(), invitation.ID,
		req.GuestName, req.GuestCount, models.RsvpStatus(req.Status), req.Message)
	if err != nil {
		var svcErr services.RsvpServiceError
		if errors.As(err, &svcErr) && !errors.Is(err, services.ErrRsvpCreationFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("SubmitRsvp: kayıt hatası",
			zap.String("subdomain", subdomain), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "yanıtınız kaydedilemedi"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "LCV yanıtınız alındı, teşekkürler.",
		"rsvp_id": rsvp.ID,
	})
}

func (h *InvitationHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, "layouts/error_layout")
}

func (h *InvitationHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/error_layout")
}
