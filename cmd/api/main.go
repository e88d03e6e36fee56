package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/billing-portal/internal/application/analytics"
	"github.com/jhoicas/billing-portal/internal/application/auth"
	"github.com/jhoicas/billing-portal/internal/application/billing"
	"github.com/jhoicas/billing-portal/internal/application/seed"
	"github.com/jhoicas/billing-portal/internal/application/usecase"
	"github.com/jhoicas/billing-portal/internal/domain/charge"
	"github.com/jhoicas/billing-portal/internal/infrastructure/brasilapi"
	infrapdf "github.com/jhoicas/billing-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/billing-portal/internal/infrastructure/postgres"
	"github.com/jhoicas/billing-portal/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/billing-portal/internal/interfaces/http"
	"github.com/jhoicas/billing-portal/pkg/config"
	"github.com/jhoicas/billing-portal/pkg/logger"
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
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida")
	}
	clock := charge.NewClock(loc)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	chargeRepo := postgres.NewChargeRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	modelRepo := postgres.NewEquipmentModelRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	if cfg.App.SeedOnStart {
		if _, err := seed.NewSeeder(userRepo, companyRepo, chargeRepo, log).Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("seed inicial")
		}
	}

	store, err := storage.NewLocalFileStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("directorio de uploads")
	}

	cnpjTimeout := time.Duration(cfg.CNPJ.TimeoutSeconds) * time.Second
	cnpjClient := brasilapi.NewCNPJClient(cfg.CNPJ.BaseURL, cnpjTimeout)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	}, log)
	sessions := auth.NewSessionService(userRepo, cfg.Session.Secret)

	companyUC := usecase.NewCompanyUseCase(companyRepo, cnpjClient, cnpjTimeout)
	chargeUC := billing.NewChargeUseCase(chargeRepo, txRunner, clock, log)
	statementUC := billing.NewStatementUseCase(chargeRepo, companyRepo, infrapdf.NewMarotoStatementGenerator(), clock)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, chargeRepo, clock)
	contractUC := usecase.NewContractUseCase(contractRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, modelRepo)
	uploadUC := usecase.NewUploadUseCase(store, cfg.Upload.MaxBytes())
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, clock)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.TrimSpace(cfg.HTTP.AllowedOrigins),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billing Portal API",
	}))

	app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		Sessions: sessions,
		Cookie: httpRouter.CookieConfig{
			Name:       cfg.Session.CookieName,
			Secure:     cfg.Session.SecureCookie,
			ExpMinutes: cfg.Session.Expiration,
		},
		CompanyUC:   companyUC,
		ChargeUC:    chargeUC,
		StatementUC: statementUC,
		InvoiceUC:   invoiceUC,
		ContractUC:  contractUC,
		EquipmentUC: equipmentUC,
		UploadUC:    uploadUC,
		DashboardUC: dashboardUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
