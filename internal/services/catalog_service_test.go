package services_test

import (
	"testing"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCatalogForTest(t *testing.T) *services.CatalogService {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()

	categories := []models.Category{
		{ID: 1, Name: "Cabelo", Active: true, SortOrder: 1},
		{ID: 2, Name: "Barba", Active: true, SortOrder: 0},
		{ID: 3, Name: "Descontinuada", Active: false},
	}
	for i := range categories {
		assert.NoError(t, categoryRepo.Create(&categories[i]))
	}

	products := []models.Product{
		{ID: 1, Name: "Shampoo", Description: "Shampoo para cabelo", Price: 19.90, CategoryID: 1, Active: true, Featured: true, SortOrder: 2},
		{ID: 2, Name: "Gel", Description: "Gel fixador", Price: 9.50, CategoryID: 1, Active: true, SortOrder: 1},
		{ID: 3, Name: "Óleo de barba", Description: "Hidratante", Price: 29.90, CategoryID: 2, Active: true, Featured: true, SortOrder: 1},
		{ID: 4, Name: "Produto antigo", Price: 5.00, CategoryID: 1, Active: false},
	}
	for i := range products {
		assert.NoError(t, productRepo.Create(&products[i]))
	}

	return services.NewCatalogService(productRepo, categoryRepo, repositories.NewMockVariationRepository())
}

func TestCatalogService_ListProductsActiveOnly(t *testing.T) {
	catalog := newCatalogForTest(t)

	products, err := catalog.ListProducts(models.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.Active)
	}
}

func TestCatalogService_ListProductsByCategory(t *testing.T) {
	catalog := newCatalogForTest(t)

	products, err := catalog.ListProducts(models.ProductFilter{CategoryID: 2})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Óleo de barba", products[0].Name)
}

func TestCatalogService_ListProductsFeatured(t *testing.T) {
	catalog := newCatalogForTest(t)

	products, err := catalog.ListProducts(models.ProductFilter{FeaturedOnly: true})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_ListProductsSearch(t *testing.T) {
	catalog := newCatalogForTest(t)

	// Search matches name or description, case-insensitively.
	products, err := catalog.ListProducts(models.ProductFilter{Search: "fixador"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Gel", products[0].Name)
}

func TestCatalogService_ListProductsOrderAndLimit(t *testing.T) {
	catalog := newCatalogForTest(t)

	products, err := catalog.ListProducts(models.ProductFilter{CategoryID: 1})
	assert.NoError(t, err)
	// sort_order ascending: Gel (1) before Shampoo (2)
	assert.Equal(t, "Gel", products[0].Name)
	assert.Equal(t, "Shampoo", products[1].Name)

	products, err = catalog.ListProducts(models.ProductFilter{Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_DeactivateProductHidesIt(t *testing.T) {
	catalog := newCatalogForTest(t)

	assert.NoError(t, catalog.DeactivateProduct(1))

	products, err := catalog.ListProducts(models.ProductFilter{})
	assert.NoError(t, err)
	for _, p := range products {
		assert.NotEqual(t, uint(1), p.ID)
	}

	// Admin listings still see it.
	products, err = catalog.ListProducts(models.ProductFilter{IncludeInactive: true})
	assert.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalogService_SetProductImage(t *testing.T) {
	catalog := newCatalogForTest(t)

	assert.NoError(t, catalog.SetProductImage(2, "https://cdn.example.com/products/1-abc.png"))

	product, err := catalog.GetProductByID(2)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/1-abc.png", product.ImageURL)

	assert.Error(t, catalog.SetProductImage(99, "x"))
}

func TestCatalogService_ListCategories(t *testing.T) {
	catalog := newCatalogForTest(t)

	categories, err := catalog.ListCategories(false)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	// sort_order ascending: Barba (0) before Cabelo (1)
	assert.Equal(t, "Barba", categories[0].Name)

	categories, err = catalog.ListCategories(true)
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
}

func TestCatalogService_Variations(t *testing.T) {
	catalog := newCatalogForTest(t)

	variation := &models.ProductVariation{
		ProductID:     1,
		Name:          "Tamanho",
		Value:         "500ml",
		StockQuantity: 10,
		Active:        true,
	}
	assert.NoError(t, catalog.CreateVariation(variation))
	assert.NotZero(t, variation.ID)

	variations, err := catalog.ListVariations(1)
	assert.NoError(t, err)
	assert.Len(t, variations, 1)

	variation.PriceAdjustment = 5.00
	assert.NoError(t, catalog.UpdateVariation(variation))

	variations, err = catalog.ListVariations(1)
	assert.NoError(t, err)
	assert.Equal(t, 5.00, variations[0].PriceAdjustment)

	// Deactivated variations leave the listing.
	assert.NoError(t, catalog.DeactivateVariation(variation.ID, 1))
	variations, err = catalog.ListVariations(1)
	assert.NoError(t, err)
	assert.Empty(t, variations)

	// Deactivation is scoped to the owning product.
	assert.Error(t, catalog.DeactivateVariation(variation.ID, 2))
}
