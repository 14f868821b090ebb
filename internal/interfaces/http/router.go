package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/auth"
	"github.com/onu-facilities/parts-tracker/internal/application/usecase"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
	"github.com/onu-facilities/parts-tracker/pkg/config"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	PartUC      *usecase.PartUseCase
	IssuanceUC  *usecase.IssuanceUseCase
	DeliveryUC  *usecase.DeliveryUseCase
	StatsUC     *usecase.StatsUseCase
	BuildingUC  *usecase.LookupUseCase[entity.Building]
	CostCtrUC   *usecase.LookupUseCase[entity.CostCenter]
	StaffUC     *usecase.LookupUseCase[entity.StaffMember]
	LocationUC  *usecase.LookupUseCase[entity.StorageLocation]
	ShelfUC     *usecase.LookupUseCase[entity.Shelf]
	ToolUC      *usecase.LookupUseCase[entity.Tool]
	SessionRepo repository.SessionRepository
	Session     config.SessionConfig
	AppName     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Public
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   deps.AppName + " is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/current-user", authHandler.Current)

	// Everything below requires a session
	protected := api.Group("/", RequireAuth(deps.SessionRepo, deps.Session.CookieName))

	partHandler := NewPartHandler(deps.PartUC)
	protected.Get("/parts", partHandler.List)
	protected.Post("/parts", partHandler.Create)
	// Registered before /parts/:id so "low-stock" is not parsed as an id
	protected.Get("/parts/low-stock", partHandler.LowStock)
	protected.Put("/parts/:id", partHandler.Update)
	protected.Delete("/parts/:id", partHandler.Delete)

	issuanceHandler := NewIssuanceHandler(deps.IssuanceUC)
	protected.Get("/parts-issuance", issuanceHandler.List)
	protected.Get("/parts-issuance/recent", issuanceHandler.Recent)
	protected.Get("/parts-issuance/monthly-usage", issuanceHandler.MonthlyUsage)
	protected.Post("/parts-issuance", issuanceHandler.Create)

	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	protected.Get("/parts-delivery", deliveryHandler.List)
	protected.Post("/parts-delivery", deliveryHandler.Create)

	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Summary)

	registerLookup(protected, "/buildings", NewLookupHandler(deps.BuildingUC))
	registerLookup(protected, "/cost-centers", NewLookupHandler(deps.CostCtrUC))
	registerLookup(protected, "/staff", NewLookupHandler(deps.StaffUC))
	registerLookup(protected, "/storage-locations", NewLookupHandler(deps.LocationUC))
	registerLookup(protected, "/shelves", NewLookupHandler(deps.ShelfUC))
	registerLookup(protected, "/tools", NewLookupHandler(deps.ToolUC))
}

func registerLookup[T any](router fiber.Router, path string, h *LookupHandler[T]) {
	router.Get(path, h.List)
	router.Post(path, h.Create)
}
