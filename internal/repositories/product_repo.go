package repositories

import "loja/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter models.ProductFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Deactivate soft-deletes a product by clearing its active flag; the row
	// is kept so past orders and admin views can still reference it.
	Deactivate(id uint) error
	SetImageURL(id uint, imageURL string) error
}
