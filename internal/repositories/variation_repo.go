package repositories

import "loja/internal/models"

// VariationRepository defines the interface for product variation data access.
type VariationRepository interface {
	ListByProduct(productID uint) ([]models.ProductVariation, error)
	Create(variation *models.ProductVariation) error
	Update(variation *models.ProductVariation) error
	Deactivate(id, productID uint) error
}
