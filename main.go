package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"davetiye.store/configs"
	"davetiye.store/configs/configsdatabase"
	"davetiye.store/configs/configslog"
	"davetiye.store/mail"
	"davetiye.store/repositories"
	"davetiye.store/routes"
	"davetiye.store/services"
	"davetiye.store/storage"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.SLog.Errorf("Konfigürasyon yüklenemedi: %v", err)
		os.Exit(1)
	}

	db, err := configsdatabase.Connect(cfg.Database)
	if err != nil {
		configslog.Log.Error("Veritabanına bağlanılamadı", zap.Error(err))
		os.Exit(1)
	}
	defer configsdatabase.Close(db)

	// Repository katmanı
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	invitationRepo := repositories.NewInvitationRepository(db)
	rsvpRepo := repositories.NewRsvpRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	fontRepo := repositories.NewFontRepository(db)
	addressRepo := repositories.NewAddressRepository(db)

	// Servis katmanı
	mailSvc := mail.NewMailService(cfg.SMTP)
	invitationSvc := services.NewInvitationService(invitationRepo)
	svcs := routes.Services{
		Auth:       services.NewAuthService(userRepo, cfg.JWTSecret),
		Product:    services.NewProductService(productRepo, cfg.ProductCacheTTL),
		Cart:       services.NewCartService(cartRepo, productRepo),
		Order:      services.NewOrderService(db, orderRepo, cartRepo, invitationSvc, mailSvc),
		Invitation: invitationSvc,
		Rsvp:       services.NewRsvpService(rsvpRepo, invitationRepo),
		Upload:     services.NewUploadService(storage.NewHMACProvider(cfg.Storage)),
		Address:    services.NewAddressService(addressRepo),
		Template:   services.NewTemplateService(templateRepo),
		Font:       services.NewFontService(fontRepo),
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	routes.SetupRoutes(app, cfg, svcs)

	// Graceful shutdown: SIGINT/SIGTERM gelince açık istekler tamamlanır
	shutdownDone := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		configslog.SLog.Info("Kapanış sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
		close(shutdownDone)
	}()

	addr := ":" + cfg.ServerPort
	configslog.SLog.Infof("Sunucu dinliyor: %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Error("Sunucu hatası", zap.Error(err))
		os.Exit(1)
	}
	<-shutdownDone
}

// errorHandler yakalanmamış hataları tek biçimli JSON'a çevirir.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İşlenmemiş istek hatası",
			zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": "beklenmeyen bir hata oluştu"})
}
