package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/Procurement-api/internal/application/analytics"
	"github.com/jhoicas/Procurement-api/internal/application/auth"
	appbom "github.com/jhoicas/Procurement-api/internal/application/bom"
	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	infracache "github.com/jhoicas/Procurement-api/internal/infrastructure/cache"
	infracxml "github.com/jhoicas/Procurement-api/internal/infrastructure/cxml"
	infrapdf "github.com/jhoicas/Procurement-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Procurement-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Procurement-api/internal/interfaces/http"
	"github.com/jhoicas/Procurement-api/pkg/config"
	"github.com/jhoicas/Procurement-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.App.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, "up"); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	// Caché de catálogo: opcional, sin REDIS_URL el listado va directo a la DB
	var productCache repository.ProductListCache
	if cfg.Redis.Enabled() {
		client, err := infracache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, caché deshabilitada")
		} else {
			defer client.Close()
			productCache = infracache.NewProductCache(client, cfg.Redis.CacheTTL, log.Named("cache"))
		}
	}

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	rfxRepo := postgres.NewRfxRepository(pool)
	auctionRepo := postgres.NewAuctionRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	approvalRepo := postgres.NewApprovalRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		SessionTTL: cfg.Session.TTL,
	})

	// Órdenes de compra: PDF (maroto) y cXML (etree)
	orderUC := purchasing.NewOrderUseCase(purchasing.Deps{
		Orders:        orderRepo,
		Vendors:       vendorRepo,
		Products:      productRepo,
		Organizations: orgRepo,
		TxRunner:      txRunner,
		PDF:           infrapdf.NewMarotoPDFGenerator(),
		CXML:          infracxml.NewBuilder(cfg.App.Name),
	})

	go cleanupSessions(ctx, authUC, cfg.Session.CleanupInterval, log.Named("sessions"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(registry)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el swagger.json)
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Procurement API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OrganizationUC: usecase.NewOrganizationUseCase(orgRepo),
		UserUC:         usecase.NewUserUseCase(userRepo, orgRepo),
		VendorUC:       usecase.NewVendorUseCase(vendorRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo, productCache, log.Named("products")),
		BOMUC:          appbom.NewUseCase(bomRepo, productRepo, txRunner),
		RfxUC:          usecase.NewRfxUseCase(rfxRepo, vendorRepo),
		AuctionUC:      usecase.NewAuctionUseCase(auctionRepo, vendorRepo, txRunner),
		OrderUC:        orderUC,
		ApprovalUC:     usecase.NewApprovalUseCase(approvalRepo, txRunner),
		NotificationUC: usecase.NewNotificationUseCase(notificationRepo),
		DashboardUC:    appanalytics.NewDashboardUseCase(analyticsRepo),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// cleanupSessions borra sesiones vencidas cada interval hasta que ctx se cancele.
func cleanupSessions(ctx context.Context, uc *auth.AuthUseCase, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := uc.CleanupExpired(ctx)
			if err != nil {
				log.Error().Err(err).Msg("limpieza de sesiones")
				continue
			}
			if n > 0 {
				log.Info().Int64("deleted", n).Msg("sesiones expiradas eliminadas")
			}
		}
	}
}
