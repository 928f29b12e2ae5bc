package services

import (
	"loja/internal/models"
	"loja/internal/repositories"
)

// CatalogService handles business logic for products, categories and
// product variations.
type CatalogService struct {
	productRepo   repositories.ProductRepository
	categoryRepo  repositories.CategoryRepository
	variationRepo repositories.VariationRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	variationRepo repositories.VariationRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		variationRepo: variationRepo,
	}
}

// ListProducts retrieves products matching the filter.
func (s *CatalogService) ListProducts(filter models.ProductFilter) ([]models.Product, error) {
	return s.productRepo.List(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.productRepo.Update(product)
}

// DeactivateProduct soft-deletes a product: the row stays, the storefront
// stops showing it.
func (s *CatalogService) DeactivateProduct(id uint) error {
	return s.productRepo.Deactivate(id)
}

// SetProductImage updates a product's image URL after an upload.
func (s *CatalogService) SetProductImage(id uint, imageURL string) error {
	return s.productRepo.SetImageURL(id, imageURL)
}

// ListCategories retrieves categories; includeInactive is for admin views.
func (s *CatalogService) ListCategories(includeInactive bool) ([]models.Category, error) {
	return s.categoryRepo.List(includeInactive)
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CatalogService) UpdateCategory(category *models.Category) error {
	return s.categoryRepo.Update(category)
}

// DeactivateCategory soft-deletes a category.
func (s *CatalogService) DeactivateCategory(id uint) error {
	return s.categoryRepo.Deactivate(id)
}

// ListVariations retrieves the active variations of a product.
func (s *CatalogService) ListVariations(productID uint) ([]models.ProductVariation, error) {
	return s.variationRepo.ListByProduct(productID)
}

// CreateVariation creates a new product variation.
func (s *CatalogService) CreateVariation(variation *models.ProductVariation) error {
	return s.variationRepo.Create(variation)
}

// UpdateVariation updates an existing product variation.
func (s *CatalogService) UpdateVariation(variation *models.ProductVariation) error {
	return s.variationRepo.Update(variation)
}

// DeactivateVariation soft-deletes a variation of a product.
func (s *CatalogService) DeactivateVariation(id, productID uint) error {
	return s.variationRepo.Deactivate(id, productID)
}
