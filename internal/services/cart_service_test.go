package services_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/services"
	"loja/pkg/kvstore"

	"github.com/stretchr/testify/assert"
)

func newCartServiceForTest(t *testing.T) (*services.CartService, *repositories.MockProductRepository) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	seed := []models.Product{
		{ID: 1, Name: "Shampoo", Price: 19.90, ImageURL: "/static/products/shampoo.png", Active: true, CategoryID: 1},
		{ID: 2, Name: "Gel", Price: 9.50, Active: true, CategoryID: 1},
	}
	for i := range seed {
		assert.NoError(t, productRepo.Create(&seed[i]))
	}

	config := services.NewConfigService(kvstore.NewMemoryStore())
	assert.NoError(t, config.Put(context.Background(), services.ConfigKeyWhatsAppNumber, "5511999999999"))

	cartService := services.NewCartService(repositories.NewMockCartRepository(), productRepo, config, nil)
	return cartService, productRepo
}

func TestCartService_AddItemSeedsFromCatalog(t *testing.T) {
	cartService, _ := newCartServiceForTest(t)
	ctx := context.Background()

	cart, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Shampoo", cart.Items[0].Name)
	assert.Equal(t, 19.90, cart.Items[0].UnitPrice)
	assert.Equal(t, "/static/products/shampoo.png", cart.Items[0].ImageRef)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Unknown product cannot be added.
	_, err = cartService.AddItem(ctx, "cliente-1", 99)
	assert.Error(t, err)
}

func TestCartService_RepeatAddKeepsFirstSeenPrice(t *testing.T) {
	cartService, productRepo := newCartServiceForTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)

	// A price change in the catalog does not touch lines already in carts.
	product, err := productRepo.GetByID(1)
	assert.NoError(t, err)
	product.Price = 25.00
	assert.NoError(t, productRepo.Update(product))

	cart, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 19.90, cart.Items[0].UnitPrice)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_MutationsPersistAcrossLoads(t *testing.T) {
	cartService, _ := newCartServiceForTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)
	_, err = cartService.ChangeQuantity(ctx, "cliente-1", 1, 2)
	assert.NoError(t, err)

	cart, err := cartService.Get(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.BadgeCount())

	// Other clients see their own carts, not this one.
	other, err := cartService.Get(ctx, "cliente-2")
	assert.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartService_ChangeQuantityRemovesExhaustedLines(t *testing.T) {
	cartService, _ := newCartServiceForTest(t)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)

	cart, err := cartService.ChangeQuantity(ctx, "cliente-1", 1, -1)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_Checkout(t *testing.T) {
	cartService, _ := newCartServiceForTest(t)
	ctx := context.Background()

	// cart = 2x Shampoo (19.90), 1x Gel (9.50)
	_, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)
	_, err = cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)
	_, err = cartService.AddItem(ctx, "cliente-1", 2)
	assert.NoError(t, err)

	checkoutURL, err := cartService.Checkout(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(checkoutURL, "https://wa.me/5511999999999?text="), checkoutURL)

	parsed, err := url.Parse(checkoutURL)
	assert.NoError(t, err)
	message, err := url.QueryUnescape(parsed.RawQuery[len("text="):])
	assert.NoError(t, err)

	shampooLine := "• Shampoo - R$ 19.90 x 2 = R$ 39.80"
	gelLine := "• Gel - R$ 9.50 x 1 = R$ 9.50"
	totalLine := "TOTAL: R$ 49.30"
	assert.Contains(t, message, shampooLine)
	assert.Contains(t, message, gelLine)
	assert.Contains(t, message, totalLine)

	// Lines appear in cart order, total after the items.
	assert.Less(t, strings.Index(message, shampooLine), strings.Index(message, gelLine))
	assert.Less(t, strings.Index(message, gelLine), strings.Index(message, totalLine))

	// Checkout does not clear the cart; that needs an explicit Clear.
	cart, err := cartService.Get(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.BadgeCount())

	assert.NoError(t, cartService.Clear(ctx, "cliente-1"))
	cart, err = cartService.Get(ctx, "cliente-1")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.BadgeCount())
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	cartService, _ := newCartServiceForTest(t)

	_, err := cartService.Checkout(context.Background(), "cliente-sem-carrinho")
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCartService_CheckoutWithoutDestination(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	product := models.Product{ID: 1, Name: "Shampoo", Price: 19.90, Active: true, CategoryID: 1}
	assert.NoError(t, productRepo.Create(&product))

	// No whatsapp_number configured.
	config := services.NewConfigService(kvstore.NewMemoryStore())
	cartService := services.NewCartService(repositories.NewMockCartRepository(), productRepo, config, nil)

	ctx := context.Background()
	_, err := cartService.AddItem(ctx, "cliente-1", 1)
	assert.NoError(t, err)

	_, err = cartService.Checkout(ctx, "cliente-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestCheckoutMessage_Format(t *testing.T) {
	cart := &models.Cart{ID: "cliente-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")
	cart.ChangeQuantity(1, 1)
	cart.AddItem(2, "Gel", 9.50, "")

	message := services.CheckoutMessage(cart)
	lines := strings.Split(message, "\n")

	assert.Equal(t, "Olá! Gostaria de fazer um pedido:", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "📋 ITENS DO PEDIDO:", lines[2])
	assert.Equal(t, "• Shampoo - R$ 19.90 x 2 = R$ 39.80", lines[3])
	assert.Equal(t, "• Gel - R$ 9.50 x 1 = R$ 9.50", lines[4])
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "💰 TOTAL: R$ 49.30", lines[6])
	assert.Equal(t, "", lines[7])
	assert.Equal(t, "Por favor, confirme a disponibilidade e me informe as formas de pagamento. Obrigado!", lines[8])
}

func TestCheckoutURL_Encoding(t *testing.T) {
	cart := &models.Cart{ID: "cliente-1"}
	cart.AddItem(1, "Shampoo", 19.90, "")

	checkoutURL := services.CheckoutURL(cart, "5511999999999")
	// Spaces must be %20, not '+', so every WhatsApp client renders them.
	assert.NotContains(t, checkoutURL, "+")
	assert.Contains(t, checkoutURL, "%20")

	parsed, err := url.Parse(checkoutURL)
	assert.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5511999999999", parsed.Path)

	message := parsed.Query().Get("text")
	assert.Contains(t, message, "• Shampoo - R$ 19.90 x 1 = R$ 19.90")
}
