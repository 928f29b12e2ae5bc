package handlers

import (
	"fmt"
	"log"

	"loja/internal/models"
	"loja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog, both the
// public storefront listing and the admin CRUD surface.
type ProductHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront product routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/products/:id/variations", h.HandleListVariations)
}

// RegisterAdminRoutes registers the admin product routes. The caller is
// expected to mount these behind the session middleware.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/products", h.HandleAdminListProducts)
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeactivateProduct)
	router.Post("/products/:id/image", h.HandleSetProductImage)
	router.Post("/products/:id/variations", h.HandleCreateVariation)
	router.Put("/products/:id/variations/:variationID", h.HandleUpdateVariation)
	router.Delete("/products/:id/variations/:variationID", h.HandleDeactivateVariation)
}

func (h *ProductHandler) productFilter(c *fiber.Ctx, includeInactive bool) models.ProductFilter {
	return models.ProductFilter{
		CategoryID:      uint(c.QueryInt("category")),
		FeaturedOnly:    c.Query("featured") == "true",
		Search:          c.Query("search"),
		Limit:           c.QueryInt("limit"),
		IncludeInactive: includeInactive,
	}
}

// HandleListProducts lists active products, honoring the category, featured,
// search and limit query parameters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts(h.productFilter(c, false))
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve products",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

// HandleAdminListProducts lists all products, including deactivated ones.
func (h *ProductHandler) HandleAdminListProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.ListProducts(h.productFilter(c, true))
	if err != nil {
		log.Printf("Error listing products for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve products",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

// HandleGetProduct retrieves a single product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	product, err := h.catalogService.GetProductByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleListVariations lists the active variations of a product.
func (h *ProductHandler) HandleListVariations(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	variations, err := h.catalogService.ListVariations(uint(id))
	if err != nil {
		log.Printf("Error listing variations for product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve variations",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    variations,
		"count":   len(variations),
	})
}

// HandleCreateProduct creates a new product. New products are active by
// default.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return h.validationError(c, err)
	}

	product.ID = 0
	product.Active = true
	if err := h.catalogService.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      product.ID,
		"message": "Product created",
	})
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return h.validationError(c, err)
	}

	product.ID = uint(id)
	if err := h.catalogService.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"id":      product.ID,
		"message": "Product updated",
	})
}

// HandleDeactivateProduct soft-deletes a product.
func (h *ProductHandler) HandleDeactivateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	if err := h.catalogService.DeactivateProduct(uint(id)); err != nil {
		log.Printf("Error deactivating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted",
	})
}

// SetImageRequest represents the request body for attaching an uploaded
// image to a product.
type SetImageRequest struct {
	ImageURL string `json:"image_url" validate:"required"`
}

// HandleSetProductImage stores the image URL on a product after an upload.
func (h *ProductHandler) HandleSetProductImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	var req SetImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return h.validationError(c, err)
	}

	if err := h.catalogService.SetProductImage(uint(id), req.ImageURL); err != nil {
		log.Printf("Error setting image for product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update product image",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product image updated",
	})
}

// HandleCreateVariation creates a variation under a product.
func (h *ProductHandler) HandleCreateVariation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	var variation models.ProductVariation
	if err := c.BodyParser(&variation); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(variation); err != nil {
		return h.validationError(c, err)
	}

	variation.ID = 0
	variation.ProductID = uint(id)
	variation.Active = true
	if err := h.catalogService.CreateVariation(&variation); err != nil {
		log.Printf("Error creating variation for product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create variation",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      variation.ID,
		"message": "Variation created",
	})
}

// HandleUpdateVariation updates a variation, scoped to its parent product.
func (h *ProductHandler) HandleUpdateVariation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}
	variationID, err := c.ParamsInt("variationID")
	if err != nil || variationID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid variation ID",
		})
	}

	var variation models.ProductVariation
	if err := c.BodyParser(&variation); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(variation); err != nil {
		return h.validationError(c, err)
	}

	variation.ID = uint(variationID)
	variation.ProductID = uint(id)
	if err := h.catalogService.UpdateVariation(&variation); err != nil {
		log.Printf("Error updating variation %d of product %d: %v", variationID, id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update variation",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"id":      variation.ID,
		"message": "Variation updated",
	})
}

// HandleDeactivateVariation soft-deletes a variation of a product.
func (h *ProductHandler) HandleDeactivateVariation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}
	variationID, err := c.ParamsInt("variationID")
	if err != nil || variationID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid variation ID",
		})
	}

	if err := h.catalogService.DeactivateVariation(uint(variationID), uint(id)); err != nil {
		log.Printf("Error deactivating variation %d of product %d: %v", variationID, id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete variation",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Variation deleted",
	})
}

func (h *ProductHandler) validationError(c *fiber.Ctx, err error) error {
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
