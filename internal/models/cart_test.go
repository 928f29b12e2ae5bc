package models_test

import (
	"testing"

	"loja/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	assert.True(t, cart.IsEmpty())

	cart.AddItem(1, "Shampoo", 19.90, "products/shampoo.png")
	assert.False(t, cart.IsEmpty())
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Repeat adds bump the quantity only.
	cart.AddItem(1, "Shampoo", 19.90, "products/shampoo.png")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddItemFirstSeenValuesWin(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "products/shampoo.png")

	// A later add with different name/price/image does not refresh the line.
	cart.AddItem(1, "Shampoo Premium", 24.90, "products/other.png")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Shampoo", cart.Items[0].Name)
	assert.Equal(t, 19.90, cart.Items[0].UnitPrice)
	assert.Equal(t, "products/shampoo.png", cart.Items[0].ImageRef)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_RepeatAddEqualsChangeQuantity(t *testing.T) {
	const n = 5

	repeated := &models.Cart{ID: "a"}
	for i := 0; i < n; i++ {
		repeated.AddItem(1, "Gel", 9.50, "")
	}

	bumped := &models.Cart{ID: "b"}
	bumped.AddItem(1, "Gel", 9.50, "")
	bumped.ChangeQuantity(1, n-1)

	assert.Equal(t, repeated.Items, bumped.Items)
	assert.Equal(t, repeated.Total(), bumped.Total())
	assert.Equal(t, repeated.BadgeCount(), bumped.BadgeCount())
}

func TestCart_ChangeQuantity(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.ChangeQuantity(1, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart.ChangeQuantity(1, -1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Unknown product is a no-op.
	cart.ChangeQuantity(99, 1)
	assert.Len(t, cart.Items, 1)
}

func TestCart_ChangeQuantityToZeroRemoves(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.AddItem(1, "Shampoo", 19.90, "")

	cart.ChangeQuantity(1, -2)
	assert.True(t, cart.IsEmpty())
}

func TestCart_ChangeQuantityBelowZeroRemoves(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")

	cart.ChangeQuantity(1, -10)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.BadgeCount())
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.AddItem(2, "Gel", 9.50, "")

	cart.RemoveItem(1)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)

	cart.RemoveItem(2)
	assert.True(t, cart.IsEmpty())

	// Removing from an empty cart is a no-op.
	cart.RemoveItem(2)
	assert.True(t, cart.IsEmpty())
}

func TestCart_TotalAndBadgeCount(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.AddItem(2, "Gel", 9.50, "")

	assert.InDelta(t, 49.30, cart.Total(), 0.0001)
	assert.Equal(t, 3, cart.BadgeCount())
}

func TestCart_Clear(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.AddItem(2, "Gel", 9.50, "")

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.BadgeCount())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCart_DisplayOrderIsInsertionOrder(t *testing.T) {
	cart := &models.Cart{ID: "cart-1"}
	cart.AddItem(3, "Pente", 5.00, "")
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.AddItem(2, "Gel", 9.50, "")
	cart.AddItem(1, "Shampoo", 19.90, "")

	ids := []uint{cart.Items[0].ProductID, cart.Items[1].ProductID, cart.Items[2].ProductID}
	assert.Equal(t, []uint{3, 1, 2}, ids)
}
