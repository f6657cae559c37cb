package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/repositories"
	"davetiye.store/services"
)

// StorefrontHandler müşteri vitrini ürün uçlarını yönetir.
type StorefrontHandler struct {
	productService services.IProductService
}

// NewStorefrontHandler yeni bir StorefrontHandler örneği oluşturur.
func NewStorefrontHandler(productService services.IProductService) *StorefrontHandler {
	return &StorefrontHandler{productService: productService}
}

// ListProducts satıştaki ürünleri listeler. ?category=DIGITAL|PHYSICAL
// ile daraltılabilir; geçersiz kategori filtresiz liste döner.
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{OnlyActive: true}
	if category := models.ProductCategory(c.Query("category")); category.Valid() {
		filter.Category = category
	}

	products, err := h.productService.GetProducts(c.UserContext(), filter)
	if err != nil {
		configslog.Log.Error("ListProducts: ürünler alınamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ürünler listelenemedi"})
	}
	return c.JSON(fiber.Map{"products": products})
}

// GetProduct tek ürün detayı döner.
func (h *StorefrontHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ürün kimliği"})
	}

	product, err := h.productService.GetProductByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetProduct: ürün alınamadı", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ürün bilgisi alınamadı"})
	}
	if !product.IsActive {
		// Satıştan kalkan ürün vitrine sızmaz
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": string(services.ErrProductNotFound)})
	}
	return c.JSON(product)
}
