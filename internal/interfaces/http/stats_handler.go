package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/application/usecase"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler builds the handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary returns part totals, stock value, monthly issuance volume and the
// low-stock count.
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
