package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"davetiye.store/configs"
	auth_handlers "davetiye.store/handlers/auth"
	public_handlers "davetiye.store/handlers/public"
	"davetiye.store/services"
)

// Services router'ın bağlayacağı servis katmanı. main'de kurulup buraya
// aktarılır; route katmanı hiçbir bağımlılığı kendisi oluşturmaz.
type Services struct {
	Auth       services.IAuthService
	Product    services.IProductService
	Cart       services.ICartService
	Order      services.IOrderService
	Invitation services.IInvitationService
	Rsvp       services.IRsvpService
	Upload     services.IUploadService
	Address    services.IAddressService
	Template   services.ITemplateService
	Font       services.IFontService
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, cfg *configs.Config, svcs Services) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	authHandler := auth_handlers.NewAuthHandler(svcs.Auth)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	registerPublicRoutes(app, cfg, svcs)
	registerPanelRoutes(app, cfg, svcs)
	registerDashboardRoutes(app, cfg, svcs)

	// Public davetiye rotası tüm özel gruplardan sonra gelir; aksi halde
	// /panel gibi önekler subdomain parametresi olarak yakalanırdı.
	publicInvitation := public_handlers.NewInvitationHandler(svcs.Invitation, svcs.Rsvp)
	app.Get("/:subdomain", publicInvitation.ShowInvitation)
	app.Post("/:subdomain/rsvp", publicInvitation.SubmitRsvp)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Sayfa Bulunamadı",
		}, "layouts/error_layout")
	}
}
