package handlers

import (
	"errors"
	"fmt"
	"log"

	"loja/internal/models"
	"loja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for shopping carts. The client picks its
// own cart ID (a UUID kept in browser storage) and sends it in the path.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/:cartID", h.HandleGetCart)
	router.Delete("/:cartID", h.HandleClearCart)
	router.Post("/:cartID/items", h.HandleAddItem)
	router.Patch("/:cartID/items/:productID", h.HandleChangeQuantity)
	router.Delete("/:cartID/items/:productID", h.HandleRemoveItem)
	router.Post("/:cartID/checkout", h.HandleCheckout)
}

// HandleGetCart returns the cart with its derived total and badge count.
// Unknown cart IDs read as an empty cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.cartService.Get(c.Context(), c.Params("cartID"))
	if err != nil {
		log.Printf("Error loading cart %s: %v", c.Params("cartID"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load cart",
		})
	}
	return h.cartResponse(c, fiber.StatusOK, cart)
}

// AddItemRequest represents the request body for adding a product to a cart.
type AddItemRequest struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
}

// HandleAddItem adds one unit of a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
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

	cart, err := h.cartService.AddItem(c.Context(), c.Params("cartID"), req.ProductID)
	if err != nil {
		log.Printf("Error adding product %d to cart %s: %v", req.ProductID, c.Params("cartID"), err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Product not found",
		})
	}
	return h.cartResponse(c, fiber.StatusOK, cart)
}

// ChangeQuantityRequest represents the request body for a quantity change.
// Delta is added to the current quantity; zero or below removes the line.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// HandleChangeQuantity applies a quantity delta to a cart line. Changing a
// product that is not in the cart is a no-op, not an error.
func (h *CartHandler) HandleChangeQuantity(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productID")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	var req ChangeQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Delta must not be zero",
		})
	}

	cart, err := h.cartService.ChangeQuantity(c.Context(), c.Params("cartID"), uint(productID), req.Delta)
	if err != nil {
		log.Printf("Error changing quantity in cart %s: %v", c.Params("cartID"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update cart",
		})
	}
	return h.cartResponse(c, fiber.StatusOK, cart)
}

// HandleRemoveItem deletes a cart line regardless of its quantity.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productID")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product ID",
		})
	}

	cart, err := h.cartService.RemoveItem(c.Context(), c.Params("cartID"), uint(productID))
	if err != nil {
		log.Printf("Error removing product %d from cart %s: %v", productID, c.Params("cartID"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to update cart",
		})
	}
	return h.cartResponse(c, fiber.StatusOK, cart)
}

// HandleClearCart empties the cart. The storefront calls this only after the
// user confirms, typically once the WhatsApp handoff went through.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.Clear(c.Context(), c.Params("cartID")); err != nil {
		log.Printf("Error clearing cart %s: %v", c.Params("cartID"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to clear cart",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart cleared",
	})
}

// HandleCheckout returns the WhatsApp URL for the cart. The cart itself is
// not modified.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	url, err := h.cartService.Checkout(c.Context(), c.Params("cartID"))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Cart is empty",
			})
		}
		log.Printf("Error during checkout of cart %s: %v", c.Params("cartID"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Checkout failed",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"url":     url,
	})
}

func (h *CartHandler) cartResponse(c *fiber.Ctx, status int, cart *models.Cart) error {
	return c.Status(status).JSON(fiber.Map{
		"success":     true,
		"data":        cart,
		"total":       cart.Total(),
		"badge_count": cart.BadgeCount(),
	})
}
