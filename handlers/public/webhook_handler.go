package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/payment"
	"davetiye.store/services"
)

// signatureHeader ödeme sağlayıcısının imzayı koyduğu başlık.
const signatureHeader = "X-Webhook-Signature"

// WebhookHandler ödeme sağlayıcısından gelen olayları işler.
type WebhookHandler struct {
	orderService  services.IOrderService
	webhookSecret string
}

// NewWebhookHandler yeni bir WebhookHandler örneği oluşturur.
func NewWebhookHandler(orderService services.IOrderService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{orderService: orderService, webhookSecret: webhookSecret}
}

// HandlePaymentWebhook imzayı doğrular ve olayı sipariş servisine
// aktarır. Sağlayıcı 2xx dışındaki her yanıtta olayı tekrar dener; bu
// yüzden işlenemeyen ama kalıcı olarak geçersiz olaylara 4xx, geçici
// hatalara 5xx dönülür.
func (h *WebhookHandler) HandlePaymentWebhook(c *fiber.Ctx) error {
	event, err := payment.VerifyAndParse(c.Body(), c.Get(signatureHeader), h.webhookSecret)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			configslog.Log.Warn("Webhook imza doğrulaması başarısız", zap.String("ip", c.IP()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, payment.ErrMalformedEvent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Webhook doğrulama hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "webhook işlenemedi"})
	}

	if err := h.orderService.HandlePaymentEvent(c.UserContext(), event); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) || errors.Is(err, services.ErrOrderInvalidStatus) {
			// Retry düzeltemez; sağlayıcıya kalıcı hata bildirilir
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Webhook olayı uygulanamadı",
			zap.String("orderNumber", event.OrderNumber), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "olay uygulanamadı"})
	}

	return c.JSON(fiber.Map{"received": true})
}
