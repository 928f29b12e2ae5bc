package handlers

import (
	"log"

	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ConfigHandler handles HTTP requests for the store configuration strings.
type ConfigHandler struct {
	configService *services.ConfigService
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// RegisterPublicRoutes registers the storefront configuration route. The
// storefront needs the full set to render name, theme and contact details.
func (h *ConfigHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/config", h.HandleGetConfig)
}

// RegisterAdminRoutes registers the admin configuration routes.
func (h *ConfigHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/config", h.HandleGetConfig)
	router.Post("/config", h.HandleUpdateConfig)
}

// HandleGetConfig returns every configuration key with its current value.
func (h *ConfigHandler) HandleGetConfig(c *fiber.Ctx) error {
	config, err := h.configService.GetAll(c.Context())
	if err != nil {
		log.Printf("Error reading store config: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve configuration",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    config,
	})
}

// HandleUpdateConfig writes the submitted configuration values. Unknown keys
// fail the whole request.
func (h *ConfigHandler) HandleUpdateConfig(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if len(values) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No configuration values provided",
		})
	}

	if err := h.configService.PutAll(c.Context(), values); err != nil {
		log.Printf("Error updating store config: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Configuration updated",
	})
}
