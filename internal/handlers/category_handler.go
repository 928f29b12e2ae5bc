package handlers

import (
	"fmt"
	"log"

	"loja/internal/models"
	"loja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for product categories.
type CategoryHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront category routes.
func (h *CategoryHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleListCategories)
}

// RegisterAdminRoutes registers the admin category routes.
func (h *CategoryHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleAdminListCategories)
	router.Post("/categories", h.HandleCreateCategory)
	router.Put("/categories/:id", h.HandleUpdateCategory)
	router.Delete("/categories/:id", h.HandleDeactivateCategory)
}

// HandleListCategories lists active categories for the storefront.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(false)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve categories",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
		"count":   len(categories),
	})
}

// HandleAdminListCategories lists all categories, including deactivated ones.
func (h *CategoryHandler) HandleAdminListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(true)
	if err != nil {
		log.Printf("Error listing categories for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve categories",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
		"count":   len(categories),
	})
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(category); err != nil {
		return h.validationError(c, err)
	}

	category.ID = 0
	category.Active = true
	if err := h.catalogService.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      category.ID,
		"message": "Category created",
	})
}

// HandleUpdateCategory updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID",
		})
	}

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(category); err != nil {
		return h.validationError(c, err)
	}

	category.ID = uint(id)
	if err := h.catalogService.UpdateCategory(&category); err != nil {
		log.Printf("Error updating category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update category",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"id":      category.ID,
		"message": "Category updated",
	})
}

// HandleDeactivateCategory soft-deletes a category.
func (h *CategoryHandler) HandleDeactivateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid category ID",
		})
	}

	if err := h.catalogService.DeactivateCategory(uint(id)); err != nil {
		log.Printf("Error deactivating category %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete category",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted",
	})
}

func (h *CategoryHandler) validationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
