package repositories

import "loja/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(includeInactive bool) ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Deactivate(id uint) error
}
