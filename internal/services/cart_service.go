package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/pkg/rabbitmq"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no
// items. It is surfaced to the user, never silently swallowed.
var ErrEmptyCart = errors.New("cart is empty")

// Fixed pieces of the order message handed off to WhatsApp. The item lines
// and total are rendered between greeting and closing.
const (
	checkoutGreeting = "Olá! Gostaria de fazer um pedido:\n\n📋 ITENS DO PEDIDO:"
	checkoutClosing  = "Por favor, confirme a disponibilidade e me informe as formas de pagamento. Obrigado!"
)

// CartService owns order composition: durable per-client carts and the
// deterministic serialization of a cart into a WhatsApp handoff URL.
// Cart mutations never touch the catalog; a product is read exactly once,
// to seed a new cart line.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	config      *ConfigService
	mqClient    *rabbitmq.Client
}

// NewCartService creates a new CartService. mqClient may be nil, in which
// case checkout event publication is skipped.
func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	config *ConfigService,
	mqClient *rabbitmq.Client,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		config:      config,
		mqClient:    mqClient,
	}
}

// Get loads the cart for the given client. Unknown IDs yield an empty cart.
func (s *CartService) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	return s.cartRepo.Get(ctx, cartID)
}

// AddItem adds one unit of the product to the cart, seeding the line with
// the product's current name, price and image on first add. Repeat adds only
// bump the quantity; the seeded values are not refreshed.
func (s *CartService) AddItem(ctx context.Context, cartID string, productID uint) (*models.Cart, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("cannot add product to cart: %w", err)
	}

	cart, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(product.ID, product.Name, product.Price, product.ImageURL)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ChangeQuantity adds delta to the quantity of a cart line; a resulting
// quantity of zero or less removes the line.
func (s *CartService) ChangeQuantity(ctx context.Context, cartID string, productID uint, delta int) (*models.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.ChangeQuantity(productID, delta)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a cart line.
func (s *CartService) RemoveItem(ctx context.Context, cartID string, productID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart. Checkout never calls this implicitly: clearing is
// a separate, explicitly confirmed step so a user backing out of WhatsApp
// does not lose their cart.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.cartRepo.Delete(ctx, cartID)
}

// Checkout serializes the cart into the order message and returns the
// WhatsApp deep-link URL for it. The cart is left untouched. Returns
// ErrEmptyCart when there is nothing to order.
func (s *CartService) Checkout(ctx context.Context, cartID string) (string, error) {
	cart, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		return "", err
	}
	if cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	destination, err := s.config.Get(ctx, ConfigKeyWhatsAppNumber)
	if err != nil {
		return "", fmt.Errorf("cannot resolve checkout destination: %w", err)
	}
	if destination == "" {
		return "", fmt.Errorf("checkout destination number is not configured")
	}

	checkoutURL := CheckoutURL(cart, destination)
	s.publishCheckoutEvent(cart, destination)
	return checkoutURL, nil
}

// publishCheckoutEvent emits a checkout event for back-office tooling.
// Publication is best-effort: failures are logged and never surfaced to the
// customer.
func (s *CartService) publishCheckoutEvent(cart *models.Cart, destination string) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping checkout event publication.")
		return
	}

	event := map[string]interface{}{
		"cartID":      cart.ID,
		"itemCount":   len(cart.Items),
		"badgeCount":  cart.BadgeCount(),
		"total":       cart.Total(),
		"destination": destination,
	}
	if err := s.mqClient.PublishCheckoutCreated(event); err != nil {
		log.Printf("Warning: Failed to publish checkout event for cart %s: %v", cart.ID, err)
	}
}

// CheckoutMessage renders the order message for a cart: greeting, one line
// per item in cart order, a blank line, the total, and the closing request
// for confirmation. Prices are rounded to two decimals here and only here.
func CheckoutMessage(cart *models.Cart) string {
	var b strings.Builder
	b.WriteString(checkoutGreeting)
	for _, item := range cart.Items {
		fmt.Fprintf(&b, "\n• %s - R$ %.2f x %d = R$ %.2f", item.Name, item.UnitPrice, item.Quantity, item.Subtotal())
	}
	fmt.Fprintf(&b, "\n\n💰 TOTAL: R$ %.2f", cart.Total())
	b.WriteString("\n\n")
	b.WriteString(checkoutClosing)
	return b.String()
}

// CheckoutURL builds the wa.me deep link carrying the order message for the
// given destination number (international format, digits only).
func CheckoutURL(cart *models.Cart, destination string) string {
	return "https://wa.me/" + destination + "?text=" + encodeMessage(CheckoutMessage(cart))
}

// encodeMessage percent-encodes the message for use in a query string,
// keeping spaces as %20 rather than '+' so the link renders correctly in
// every WhatsApp client.
func encodeMessage(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}
