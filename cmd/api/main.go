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
	appanalytics "github.com/tmercier/gestion-locative-api/internal/application/analytics"
	"github.com/tmercier/gestion-locative-api/internal/application/quittance"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
	infrapdf "github.com/tmercier/gestion-locative-api/internal/infrastructure/pdf"
	"github.com/tmercier/gestion-locative-api/internal/infrastructure/postgres"
	httpRouter "github.com/tmercier/gestion-locative-api/internal/interfaces/http"
	"github.com/tmercier/gestion-locative-api/pkg/config"
	"github.com/tmercier/gestion-locative-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migration du schéma")
	}

	bienRepo := postgres.NewBienRepository(pool)
	locataireRepo := postgres.NewLocataireRepository(pool)
	bailleurRepo := postgres.NewBailleurRepository(pool)
	paiementRepo := postgres.NewPaiementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bienUC := usecase.NewBienUseCase(bienRepo, locataireRepo)
	locataireUC := usecase.NewLocataireUseCase(locataireRepo, bienRepo, txRunner)
	paiementUC := usecase.NewPaiementUseCase(paiementRepo)
	bailleurUC := usecase.NewBailleurUseCase(bailleurRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(bienRepo, locataireRepo, analyticsRepo)
	statistiquesUC := appanalytics.NewStatistiquesUseCase(bienRepo, locataireRepo, analyticsRepo)

	// PDF : quittance de loyer
	pdfGenerator := infrapdf.NewMarotoQuittanceGenerator()
	quittanceUC := quittance.NewUseCase(locataireRepo, bienRepo, bailleurRepo, paiementRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion Locative API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BienUC:         bienUC,
		LocataireUC:    locataireUC,
		PaiementUC:     paiementUC,
		BailleurUC:     bailleurUC,
		DashboardUC:    dashboardUC,
		StatistiquesUC: statistiquesUC,
		QuittanceUC:    quittanceUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("fermeture du serveur")
	}

	log.Info().Msg("application arrêtée")
}
