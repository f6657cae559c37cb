package routes

import (
	"github.com/gofiber/fiber/v2"

	"davetiye.store/configs"
	public_handlers "davetiye.store/handlers/public"
)

// registerPublicRoutes kimlik doğrulama gerektirmeyen vitrin ve webhook
// rotalarını tanımlar.
func registerPublicRoutes(app *fiber.App, cfg *configs.Config, svcs Services) {
	storefrontHandler := public_handlers.NewStorefrontHandler(svcs.Product)
	webhookHandler := public_handlers.NewWebhookHandler(svcs.Order, cfg.PaymentWebhookSecret)

	api := app.Group("/api")
	api.Get("/products", storefrontHandler.ListProducts)   // GET /api/products
	api.Get("/products/:id", storefrontHandler.GetProduct) // GET /api/products/{id}

	// Ödeme sağlayıcısı callback'i; imza doğrulaması handler içinde
	app.Post("/webhooks/payment", webhookHandler.HandlePaymentWebhook)
}
