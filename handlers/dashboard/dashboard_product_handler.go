package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/pkg/queryparams"
	"davetiye.store/services"
)

// ProductHandler admin ürün yönetimi uçları.
type ProductHandler struct {
	productService services.IProductService
}

// NewProductHandler yeni bir ProductHandler örneği oluşturur.
func NewProductHandler(productService services.IProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts tüm ürünleri sayfalı listeler; pasif ürünler de görünür.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.productService.GetAllProductsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListProducts hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ürünler listelenemedi"})
	}
	return c.JSON(result)
}

type productRequest struct {
	Name             string   `json:"name" form:"name"`
	Description      string   `json:"description" form:"description"`
	Price            string   `json:"price" form:"price"`
	Category         string   `json:"category" form:"category"`
	Images           []string `json:"images" form:"images"`
	ThemeID          *string  `json:"theme_id" form:"theme_id"`
	IsActive         *bool    `json:"is_active" form:"is_active"`
	DesignTemplateID *uint    `json:"design_template_id" form:"design_template_id"`
}

// CreateProduct yeni ürün kaydeder.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fiyat sayısal olmalıdır"})
	}

	product := &models.Product{
		Name:             req.Name,
		Description:      req.Description,
		Price:            price,
		Category:         models.ProductCategory(req.Category),
		ThemeID:          req.ThemeID,
		IsActive:         true,
		DesignTemplateID: req.DesignTemplateID,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if len(req.Images) > 0 {
		if raw, err := json.Marshal(req.Images); err == nil {
			product.Images = datatypes.JSON(raw)
		}
	}

	if err := h.productService.CreateProduct(c.UserContext(), product); err != nil {
		return h.productError(c, 0, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct ürünü kısmi olarak günceller.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ürün kimliği"})
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if err := h.productService.UpdateProduct(c.UserContext(), uint(id), data); err != nil {
		return h.productError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "ürün güncellendi"})
}

// DeleteProduct ürünü satıştan kaldırır (soft delete). Geçmiş sipariş
// kalemleri fiyat snapshot'ı ile etkilenmeden kalır.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz ürün kimliği"})
	}

	if err := h.productService.DeleteProduct(c.UserContext(), uint(id)); err != nil {
		return h.productError(c, id, err)
	}
	return c.JSON(fiber.Map{"message": "ürün silindi"})
}

func (h *ProductHandler) productError(c *fiber.Ctx, id int, err error) error {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrProductInvalidInput), errors.Is(err, services.ErrProductUnknownTheme):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		configslog.Log.Error("Dashboard - ürün işlemi hatası", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "işlem tamamlanamadı"})
	}
}
