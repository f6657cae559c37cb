package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/middlewares"
	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/services"
)

// OrderHandler admin sipariş yönetimi uçları.
type OrderHandler struct {
	orderService services.IOrderService
}

// NewOrderHandler yeni bir OrderHandler örneği oluşturur.
func NewOrderHandler(orderService services.IOrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders tüm siparişleri sayfalı listeler.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.orderService.GetAllOrdersPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListOrders hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "siparişler listelenemedi"})
	}
	return c.JSON(result)
}

// GetOrder herhangi bir siparişin detayını döner.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz sipariş kimliği"})
	}

	order, err := h.orderService.GetOrderByID(c.UserContext(), uint(id), middlewares.CurrentUserID(c), true)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Dashboard - GetOrder hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sipariş bilgisi alınamadı"})
	}
	return c.JSON(order)
}

type orderStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// UpdateOrderStatus fiziksel ürün akışı için kargo/teslim durumunu
// günceller. Ödeme geçişleri buradan yapılamaz, onları webhook sürer.
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz sipariş kimliği"})
	}

	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	err = h.orderService.UpdateOrderStatus(c.UserContext(), uint(id), models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrOrderInvalidStatus), errors.Is(err, services.ErrOrderImmutable):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Dashboard - UpdateOrderStatus hatası", zap.Int("id", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "durum güncellenemedi"})
		}
	}
	return c.JSON(fiber.Map{"message": "sipariş durumu güncellendi"})
}
