package models

// CartItem is one product line in a shopping cart. Name, UnitPrice and
// ImageRef are captured when the product is first added and are not refreshed
// by later adds of the same product.
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageRef  string  `json:"image_ref,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line total for this item.
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Cart holds the order being composed by one client. Items are keyed by
// product ID (at most one line per product) and kept in insertion order.
// The zero value is an empty, usable cart.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

func (c *Cart) indexOf(productID uint) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of the given product. If the product is already in
// the cart only its quantity is incremented; the stored name, price and image
// are kept as first seen.
func (c *Cart) AddItem(productID uint, name string, unitPrice float64, imageRef string) {
	if i := c.indexOf(productID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		ImageRef:  imageRef,
		Quantity:  1,
	})
}

// ChangeQuantity adds delta (positive or negative) to the item's quantity.
// A resulting quantity of zero or less removes the item; an unknown product
// ID is a no-op.
func (c *Cart) ChangeQuantity(productID uint, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.Items[i].Quantity += delta
	if c.Items[i].Quantity <= 0 {
		c.RemoveItem(productID)
	}
}

// RemoveItem deletes the line for the given product, if present.
func (c *Cart) RemoveItem(productID uint) {
	if i := c.indexOf(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear removes all items.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the sum of all line subtotals. Rounding to two decimals happens
// only when the value is rendered, never here.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// BadgeCount is the total number of units across all lines; the storefront
// hides the cart badge when it is zero.
func (c *Cart) BadgeCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
