package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/application/usecase"
)

// IssuanceHandler handles parts-issuance endpoints.
type IssuanceHandler struct {
	uc *usecase.IssuanceUseCase
}

// NewIssuanceHandler builds the handler.
func NewIssuanceHandler(uc *usecase.IssuanceUseCase) *IssuanceHandler {
	return &IssuanceHandler{uc: uc}
}

// List returns all issuances.
func (h *IssuanceHandler) List(c *fiber.Ctx) error {
	issuances, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(issuances)
}

// Recent returns the 20 newest issuances.
func (h *IssuanceHandler) Recent(c *fiber.Ctx) error {
	issuances, err := h.uc.Recent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(issuances)
}

// Create records an issuance and decrements the part's stock.
func (h *IssuanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIssuanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	issuance, err := h.uc.Create(in, CurrentUser(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(issuance)
}

// MonthlyUsage returns the current-year issuance histogram.
func (h *IssuanceHandler) MonthlyUsage(c *fiber.Ctx) error {
	usage, err := h.uc.MonthlyUsage()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if usage == nil {
		usage = []dto.MonthlyUsageEntry{}
	}
	return c.JSON(usage)
}

// DeliveryHandler handles parts-delivery endpoints.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler builds the handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List returns all deliveries.
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	deliveries, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(deliveries)
}

// Create records a delivery; the email receipt is best effort.
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	delivery, err := h.uc.Create(in, CurrentUser(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(delivery)
}
