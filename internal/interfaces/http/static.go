package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
)

// RegisterStatic serves the built single-page client and falls back to its
// entry page for every non-API path, so client-side routes survive a
// refresh. Must run after Router so API routes win.
func RegisterStatic(app *fiber.App, dir string) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(dir); err == nil {
		app.Static("/", dir)
	}

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unknown endpoint"})
		}
		if _, err := os.Stat(index); err != nil {
			return c.Status(fiber.StatusNotFound).SendString("client bundle not built")
		}
		return c.SendFile(index)
	})
}
