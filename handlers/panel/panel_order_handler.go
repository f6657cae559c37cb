package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/middlewares"
	"davetiye.store/services"
)

// PanelOrderHandler kullanıcının sipariş işlemlerini yönetir.
type PanelOrderHandler struct {
	orderService services.IOrderService
}

// NewPanelOrderHandler yeni bir PanelOrderHandler örneği oluşturur.
func NewPanelOrderHandler(orderService services.IOrderService) *PanelOrderHandler {
	return &PanelOrderHandler{orderService: orderService}
}

// Checkout sepetten PENDING sipariş oluşturur. Ödeme dış gateway'de
// tamamlanır; yanıt sadece sipariş numarası ve tutarı taşır.
func (h *PanelOrderHandler) Checkout(c *fiber.Ctx) error {
	order, err := h.orderService.Checkout(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrOrderEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Checkout hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sipariş oluşturulamadı"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount.StringFixed(2),
		"status":       order.Status,
	})
}

// ListMyOrders kullanıcının siparişlerini listeler.
func (h *PanelOrderHandler) ListMyOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetMyOrders(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		configslog.Log.Error("ListMyOrders hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "siparişler listelenemedi"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// GetOrder tek sipariş detayı döner. Başkasının siparişi yokmuş gibi
// davranır.
func (h *PanelOrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz sipariş kimliği"})
	}

	order, err := h.orderService.GetOrderByID(c.UserContext(), uint(id), middlewares.CurrentUserID(c), middlewares.IsAdmin(c))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetOrder hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sipariş bilgisi alınamadı"})
	}
	return c.JSON(order)
}
