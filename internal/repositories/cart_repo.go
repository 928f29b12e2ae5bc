package repositories

import (
	"context"

	"loja/internal/models"
)

// CartRepository defines the interface for durable cart state. A cart is
// owned by exactly one client and is persisted after every mutation; carts
// have no expiry.
type CartRepository interface {
	// Get returns the cart for the given ID. An unknown ID yields a fresh
	// empty cart, not an error.
	Get(ctx context.Context, cartID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, cartID string) error
}
