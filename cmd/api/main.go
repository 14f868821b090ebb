package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/onu-facilities/parts-tracker/internal/application/auth"
	"github.com/onu-facilities/parts-tracker/internal/application/usecase"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/mail"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/storage"
	httpRouter "github.com/onu-facilities/parts-tracker/internal/interfaces/http"
	"github.com/onu-facilities/parts-tracker/pkg/config"
	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	backend, err := storage.NewBackend(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("storage backend")
	}
	store := storage.NewStore(backend, log)
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()
	log.Info().Str("backend", cfg.Storage.Backend).Msg("record store ready")

	userRepo := storage.NewUserRepository(store)
	partRepo := storage.NewPartRepository(store)
	issuanceRepo := storage.NewIssuanceRepository(store)
	deliveryRepo := storage.NewDeliveryRepository(store)
	sessionRepo := storage.NewSessionRepository(store)
	buildingRepo := storage.NewLookupRepository[entity.Building](store, storage.CollectionBuildings)
	costCenterRepo := storage.NewLookupRepository[entity.CostCenter](store, storage.CollectionCostCenters)
	staffRepo := storage.NewLookupRepository[entity.StaffMember](store, storage.CollectionStaffMembers)
	locationRepo := storage.NewLookupRepository[entity.StorageLocation](store, storage.CollectionStorageLocations)
	shelfRepo := storage.NewLookupRepository[entity.Shelf](store, storage.CollectionShelves)
	toolRepo := storage.NewLookupRepository[entity.Tool](store, storage.CollectionTools)

	var sender mail.Sender
	if cfg.SMTP.Enabled() {
		sender = mail.NewSMTPSender(cfg.SMTP)
		log.Info().Str("host", cfg.SMTP.Host).Msg("email receipts configured")
	} else {
		log.Info().Msg("email receipts not configured (set SMTP_HOST to enable)")
	}

	authUC := auth.NewUseCase(userRepo, sessionRepo)
	partUC := usecase.NewPartUseCase(partRepo)
	issuanceUC := usecase.NewIssuanceUseCase(issuanceRepo, partRepo, log)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, partRepo, staffRepo, buildingRepo, costCenterRepo, sender, log)
	statsUC := usecase.NewStatsUseCase(partRepo, issuanceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Parts Tracker API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PartUC:      partUC,
		IssuanceUC:  issuanceUC,
		DeliveryUC:  deliveryUC,
		StatsUC:     statsUC,
		BuildingUC:  usecase.NewLookupUseCase[entity.Building](buildingRepo),
		CostCtrUC:   usecase.NewLookupUseCase[entity.CostCenter](costCenterRepo),
		StaffUC:     usecase.NewLookupUseCase[entity.StaffMember](staffRepo),
		LocationUC:  usecase.NewLookupUseCase[entity.StorageLocation](locationRepo),
		ShelfUC:     usecase.NewLookupUseCase[entity.Shelf](shelfRepo),
		ToolUC:      usecase.NewLookupUseCase[entity.Tool](toolRepo),
		SessionRepo: sessionRepo,
		Session:     cfg.Session,
		AppName:     cfg.App.Name,
	})
	httpRouter.RegisterStatic(app, cfg.HTTP.StaticDir)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
