package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onu-facilities/parts-tracker/internal/application/auth"
	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/application/usecase"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/infrastructure/storage"
	httpiface "github.com/onu-facilities/parts-tracker/internal/interfaces/http"
	"github.com/onu-facilities/parts-tracker/pkg/config"
	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

const testCookieName = "parts_tracker_session"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Level: "error"})
	store := storage.NewStore(storage.NewMemoryBackend(), log)
	t.Cleanup(func() { _ = store.Close() })

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

	sessionCfg := config.SessionConfig{CookieName: testCookieName, TTLHours: 24}

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		AuthUC:      auth.NewUseCase(userRepo, sessionRepo),
		PartUC:      usecase.NewPartUseCase(partRepo),
		IssuanceUC:  usecase.NewIssuanceUseCase(issuanceRepo, partRepo, log),
		DeliveryUC:  usecase.NewDeliveryUseCase(deliveryRepo, partRepo, staffRepo, buildingRepo, costCenterRepo, nil, log),
		StatsUC:     usecase.NewStatsUseCase(partRepo, issuanceRepo),
		BuildingUC:  usecase.NewLookupUseCase[entity.Building](buildingRepo),
		CostCtrUC:   usecase.NewLookupUseCase[entity.CostCenter](costCenterRepo),
		StaffUC:     usecase.NewLookupUseCase[entity.StaffMember](staffRepo),
		LocationUC:  usecase.NewLookupUseCase[entity.StorageLocation](locationRepo),
		ShelfUC:     usecase.NewLookupUseCase[entity.Shelf](shelfRepo),
		ToolUC:      usecase.NewLookupUseCase[entity.Tool](toolRepo),
		SessionRepo: sessionRepo,
		Session:     sessionCfg,
		AppName:     "Parts Tracker",
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName {
			resp.Body.Close()
			return c.Value
		}
	}
	t.Fatal("login response carried no session cookie")
	return ""
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestHealthIsPublic(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "OK", body["status"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Code)

	resp = doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": "nobody",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/parts", "/api/stats", "/api/buildings", "/api/parts-issuance"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestPartLifecycleAndIssuance(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "password123")

	// Create a part under its reorder threshold
	resp := doJSON(t, app, http.MethodPost, "/api/parts", token, fiber.Map{
		"name":         "Air Filter",
		"quantity":     5,
		"reorderLevel": 10,
		"unitCost":     "3.50",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	part := decodeBody[entity.Part](t, resp)
	require.NotZero(t, part.ID)
	assert.Equal(t, 5, part.Quantity)

	// It shows up in the low-stock view
	resp = doJSON(t, app, http.MethodGet, "/api/parts/low-stock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low := decodeBody[[]entity.Part](t, resp)
	require.Len(t, low, 1)
	assert.Equal(t, part.ID, low[0].ID)

	// Issue 3; stock drops to 2
	resp = doJSON(t, app, http.MethodPost, "/api/parts-issuance", token, fiber.Map{
		"partId":   part.ID,
		"quantity": 3,
		"reason":   "maintenance",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	issued := decodeBody[entity.PartsIssuance](t, resp)
	assert.Equal(t, 1, issued.IssuedBy)

	resp = doJSON(t, app, http.MethodGet, "/api/parts", token, nil)
	parts := decodeBody[[]entity.Part](t, resp)
	require.Len(t, parts, 1)
	assert.Equal(t, 2, parts[0].Quantity)

	// Over-issue clamps at zero
	resp = doJSON(t, app, http.MethodPost, "/api/parts-issuance", token, fiber.Map{
		"partId":   part.ID,
		"quantity": 10,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/parts", token, nil)
	parts = decodeBody[[]entity.Part](t, resp)
	assert.Equal(t, 0, parts[0].Quantity)

	// Partial update touches only the supplied fields
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/parts/%d", part.ID), token, fiber.Map{
		"name": "HEPA Air Filter",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[entity.Part](t, resp)
	assert.Equal(t, "HEPA Air Filter", updated.Name)
	assert.Equal(t, 10, updated.ReorderLevel)

	// Delete, then the id is gone
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/parts/%d", part.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/parts/%d", part.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPartSearchQuery(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "password123")

	for _, name := range []string{"Air Filter", "Oil Filter", "Drive Belt"} {
		resp := doJSON(t, app, http.MethodPost, "/api/parts", token, fiber.Map{"name": name, "quantity": 1})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/parts?search=filter", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	parts := decodeBody[[]entity.Part](t, resp)
	assert.Len(t, parts, 2)
}

func TestMonthlyUsageEmptyIsArray(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "password123")

	resp := doJSON(t, app, http.MethodGet, "/api/parts-issuance/monthly-usage", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestSeededBuildingsAndCreate(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "password123")

	resp := doJSON(t, app, http.MethodGet, "/api/buildings", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buildings := decodeBody[[]entity.Building](t, resp)
	require.Len(t, buildings, 3)

	resp = doJSON(t, app, http.MethodPost, "/api/buildings", token, fiber.Map{
		"name": "Annex", "description": "Overflow offices", "active": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[entity.Building](t, resp)
	assert.Equal(t, 4, created.ID)
}

func TestStatsEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "password123")

	resp := doJSON(t, app, http.MethodPost, "/api/parts", token, fiber.Map{
		"name": "Fuse", "quantity": 20, "reorderLevel": 5, "unitCost": "0.25",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[dto.StatsResponse](t, resp)
	assert.Equal(t, 1, stats.TotalParts)
	assert.Equal(t, 20, stats.TotalPartsInStock)
	assert.True(t, stats.TotalInventoryValue.Equal(decimalFromString(t, "5")))
}

func TestLogoutDestroysSession(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "password123")

	resp := doJSON(t, app, http.MethodGet, "/api/current-user", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody[dto.SessionUserResponse](t, resp)
	assert.Equal(t, "admin", user.Username)

	resp = doJSON(t, app, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/current-user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/parts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
