package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/middlewares"
	"davetiye.store/services"
)

// PanelCartHandler kullanıcının sepet işlemlerini yönetir.
type PanelCartHandler struct {
	cartService services.ICartService
}

// NewPanelCartHandler yeni bir PanelCartHandler örneği oluşturur.
func NewPanelCartHandler(cartService services.ICartService) *PanelCartHandler {
	return &PanelCartHandler{cartService: cartService}
}

// GetCart kullanıcının sepetini döner; sepet yoksa boş oluşturulur.
func (h *PanelCartHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.cartService.GetCart(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		configslog.Log.Error("GetCart hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sepet alınamadı"})
	}
	return c.JSON(cart)
}

type addItemRequest struct {
	ProductID uint `json:"product_id" form:"product_id"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

// AddItem sepete ürün ekler; aynı ürün tekrar eklenirse miktar artar.
func (h *PanelCartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	err := h.cartService.AddItem(c.UserContext(), middlewares.CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCartProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("AddItem hatası", zap.Uint("productID", req.ProductID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ürün sepete eklenemedi"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ürün sepete eklendi"})
}

// RemoveItem sepetten ürün çıkarır.
func (h *PanelCartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ürün kimliği"})
	}

	err = h.cartService.RemoveItem(c.UserContext(), middlewares.CurrentUserID(c), uint(productID))
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("RemoveItem hatası", zap.Int("productID", productID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ürün sepetten çıkarılamadı"})
	}
	return c.JSON(fiber.Map{"message": "ürün sepetten çıkarıldı"})
}
