package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/application/usecase"
)

// LookupHandler serves one reference collection (list + create). The type
// parameter is the entity the collection holds, so the body parses straight
// into the typed shape.
type LookupHandler[T any] struct {
	uc *usecase.LookupUseCase[T]
}

// NewLookupHandler builds the handler for one collection.
func NewLookupHandler[T any](uc *usecase.LookupUseCase[T]) *LookupHandler[T] {
	return &LookupHandler[T]{uc: uc}
}

// List returns every item in the collection.
func (h *LookupHandler[T]) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create inserts an item and returns it with its assigned id.
func (h *LookupHandler[T]) Create(c *fiber.Ctx) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	item, err := h.uc.Create(&in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}
