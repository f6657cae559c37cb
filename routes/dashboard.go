package routes

import (
	"github.com/gofiber/fiber/v2"

	"davetiye.store/configs"
	dashboard_handlers "davetiye.store/handlers/dashboard"
	"davetiye.store/middlewares"
)

// registerDashboardRoutes /dashboard altındaki rotaları tanımlar.
// Sadece IsAdmin=true olan kullanıcılar erişebilir.
func registerDashboardRoutes(app *fiber.App, cfg *configs.Config, svcs Services) {
	productHandler := dashboard_handlers.NewProductHandler(svcs.Product)
	templateHandler := dashboard_handlers.NewTemplateHandler(svcs.Template)
	fontHandler := dashboard_handlers.NewFontHandler(svcs.Font)
	orderHandler := dashboard_handlers.NewOrderHandler(svcs.Order)

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware(cfg.JWTSecret),
		middlewares.RequireAdmin(),
	)

	// --- Ürün Yönetimi ---
	dashboardGroup.Get("/products", productHandler.ListProducts)         // GET /dashboard/products
	dashboardGroup.Post("/products", productHandler.CreateProduct)       // POST /dashboard/products
	dashboardGroup.Put("/products/:id", productHandler.UpdateProduct)    // PUT /dashboard/products/{id}
	dashboardGroup.Delete("/products/:id", productHandler.DeleteProduct) // DELETE /dashboard/products/{id}

	// --- Tasarım Şablonu Yönetimi ---
	dashboardGroup.Get("/templates", templateHandler.ListTemplates)         // GET /dashboard/templates
	dashboardGroup.Get("/templates/:id", templateHandler.GetTemplate)       // GET /dashboard/templates/{id}
	dashboardGroup.Post("/templates", templateHandler.CreateTemplate)       // POST /dashboard/templates
	dashboardGroup.Put("/templates/:id", templateHandler.UpdateTemplate)    // PUT /dashboard/templates/{id}
	dashboardGroup.Delete("/templates/:id", templateHandler.DeleteTemplate) // DELETE /dashboard/templates/{id}

	// --- Font Yönetimi ---
	dashboardGroup.Get("/fonts", fontHandler.ListFonts)         // GET /dashboard/fonts
	dashboardGroup.Post("/fonts", fontHandler.CreateFont)       // POST /dashboard/fonts
	dashboardGroup.Put("/fonts/:id", fontHandler.UpdateFont)    // PUT /dashboard/fonts/{id}
	dashboardGroup.Delete("/fonts/:id", fontHandler.DeleteFont) // DELETE /dashboard/fonts/{id}

	// --- Sipariş Yönetimi ---
	dashboardGroup.Get("/orders", orderHandler.ListOrders)                   // GET /dashboard/orders
	dashboardGroup.Get("/orders/:id", orderHandler.GetOrder)                 // GET /dashboard/orders/{id}
	dashboardGroup.Put("/orders/:id/status", orderHandler.UpdateOrderStatus) // PUT /dashboard/orders/{id}/status
}
