package routes

import (
	"github.com/gofiber/fiber/v2"

	"davetiye.store/configs"
	panel_handlers "davetiye.store/handlers/panel"
	"davetiye.store/middlewares"
)

// registerPanelRoutes /panel altındaki rotaları tanımlar. Giriş yapmış
// her kullanıcı erişebilir; kayıtlar istek sahibinin kimliğine göre
// daraltılır.
func registerPanelRoutes(app *fiber.App, cfg *configs.Config, svcs Services) {
	invitationHandler := panel_handlers.NewPanelInvitationHandler(svcs.Invitation, svcs.Rsvp)
	cartHandler := panel_handlers.NewPanelCartHandler(svcs.Cart)
	orderHandler := panel_handlers.NewPanelOrderHandler(svcs.Order)
	uploadHandler := panel_handlers.NewPanelUploadHandler(svcs.Upload)
	addressHandler := panel_handlers.NewPanelAddressHandler(svcs.Address)

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware(cfg.JWTSecret))

	// --- Kullanıcının Davetiyeleri ---
	panelGroup.Get("/invitations", invitationHandler.ListInvitations)         // GET /panel/invitations
	panelGroup.Get("/invitations/:id", invitationHandler.GetInvitation)       // GET /panel/invitations/{id}
	panelGroup.Put("/invitations/:id/form", invitationHandler.UpdateFormData) // PUT /panel/invitations/{id}/form
	panelGroup.Put("/invitations/:id/design", invitationHandler.UpdateDesign) // PUT /panel/invitations/{id}/design
	panelGroup.Put("/invitations/:id/status", invitationHandler.SetStatus)    // PUT /panel/invitations/{id}/status
	panelGroup.Delete("/invitations/:id", invitationHandler.DeleteInvitation) // DELETE /panel/invitations/{id}
	panelGroup.Get("/invitations/:id/rsvps", invitationHandler.ListRsvps)     // GET /panel/invitations/{id}/rsvps

	// --- Sepet ---
	panelGroup.Get("/cart", cartHandler.GetCart)                        // GET /panel/cart
	panelGroup.Post("/cart/items", cartHandler.AddItem)                 // POST /panel/cart/items
	panelGroup.Delete("/cart/items/:productId", cartHandler.RemoveItem) // DELETE /panel/cart/items/{productId}

	// --- Siparişler ---
	panelGroup.Post("/orders/checkout", orderHandler.Checkout) // POST /panel/orders/checkout
	panelGroup.Get("/orders", orderHandler.ListMyOrders)       // GET /panel/orders
	panelGroup.Get("/orders/:id", orderHandler.GetOrder)       // GET /panel/orders/{id}

	// --- Yüklemeler ---
	panelGroup.Post("/uploads/sign", uploadHandler.SignUpload) // POST /panel/uploads/sign

	// --- Adresler ---
	panelGroup.Get("/addresses", addressHandler.ListAddresses)        // GET /panel/addresses
	panelGroup.Post("/addresses", addressHandler.CreateAddress)       // POST /panel/addresses
	panelGroup.Put("/addresses/:id", addressHandler.UpdateAddress)    // PUT /panel/addresses/{id}
	panelGroup.Delete("/addresses/:id", addressHandler.DeleteAddress) // DELETE /panel/addresses/{id}
}
