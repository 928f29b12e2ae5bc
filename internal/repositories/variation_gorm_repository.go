package repositories

import (
	"fmt"

	"loja/internal/models"

	"gorm.io/gorm"
)

// GORMVariationRepository is a GORM implementation of VariationRepository.
type GORMVariationRepository struct {
	db *gorm.DB
}

// NewGORMVariationRepository creates a new instance of GORMVariationRepository.
func NewGORMVariationRepository(db *gorm.DB) *GORMVariationRepository {
	return &GORMVariationRepository{
		db: db,
	}
}

// ListByProduct retrieves the active variations of a product, ordered by
// name then value.
func (r *GORMVariationRepository) ListByProduct(productID uint) ([]models.ProductVariation, error) {
	var variations []models.ProductVariation
	err := r.db.
		Where("product_id = ? AND active = ?", productID, true).
		Order("name").Order("value").
		Find(&variations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list variations for product %d: %w", productID, err)
	}
	return variations, nil
}

// Create creates a new product variation in the database.
func (r *GORMVariationRepository) Create(variation *models.ProductVariation) error {
	if err := r.db.Create(variation).Error; err != nil {
		return fmt.Errorf("failed to create variation: %w", err)
	}
	return nil
}

// Update updates an existing variation, scoped to its product.
func (r *GORMVariationRepository) Update(variation *models.ProductVariation) error {
	res := r.db.Model(&models.ProductVariation{}).
		Where("id = ? AND product_id = ?", variation.ID, variation.ProductID).
		Updates(map[string]interface{}{
			"name":             variation.Name,
			"value":            variation.Value,
			"price_adjustment": variation.PriceAdjustment,
			"stock_quantity":   variation.StockQuantity,
			"active":           variation.Active,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update variation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("variation with ID %d not found for product %d", variation.ID, variation.ProductID)
	}
	return nil
}

// Deactivate marks a variation inactive, scoped to its product.
func (r *GORMVariationRepository) Deactivate(id, productID uint) error {
	res := r.db.Model(&models.ProductVariation{}).
		Where("id = ? AND product_id = ?", id, productID).
		Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate variation %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("variation with ID %d not found for product %d", id, productID)
	}
	return nil
}
