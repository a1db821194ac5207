package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/retail-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/retail-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retail-pro/internal/interfaces/http"
	"github.com/tu-usuario/retail-pro/pkg/config"
	"github.com/tu-usuario/retail-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	statusRepo := postgres.NewBranchStatusRepository(pool)
	expiringRepo := postgres.NewExpiringProductRepository(pool)

	// PDF: plan de transferencias imprimible para logística
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	transferUC, err := usecase.NewTransferOptimizationUseCase(
		branchRepo, statusRepo, expiringRepo,
		cfg.Transfer, pdfGenerator, cfg.App.Name, log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del motor de transferencias")
	}
	branchStatusUC := usecase.NewBranchStatusUseCase(statusRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransferUC:     transferUC,
		BranchStatusUC: branchStatusUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
