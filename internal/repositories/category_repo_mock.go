package repositories

import (
	"fmt"
	"sort"
	"sync"

	"loja/internal/models"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[uint]models.Category
	nextID     uint
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uint]models.Category),
		nextID:     1,
	}
}

// List returns categories ordered by sort order then name.
func (r *MockCategoryRepository) List(includeInactive bool) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if !includeInactive && !c.Active {
			continue
		}
		categoryList = append(categoryList, c)
	}

	sort.Slice(categoryList, func(i, j int) bool {
		if categoryList[i].SortOrder != categoryList[j].SortOrder {
			return categoryList[i].SortOrder < categoryList[j].SortOrder
		}
		return categoryList[i].Name < categoryList[j].Name
	})
	return categoryList, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with ID %d not found", id)
	}
	return &category, nil
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == 0 {
		category.ID = r.nextID
		r.nextID++
	} else if category.ID >= r.nextID {
		r.nextID = category.ID + 1
	}
	r.categories[category.ID] = *category
	return nil
}

// Update modifies an existing category.
func (r *MockCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.categories[category.ID]
	if !ok {
		return fmt.Errorf("category with ID %d not found for update", category.ID)
	}
	r.categories[category.ID] = *category
	return nil
}

// Deactivate marks a category inactive.
func (r *MockCategoryRepository) Deactivate(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return fmt.Errorf("category with ID %d not found for deactivation", id)
	}
	category.Active = false
	r.categories[id] = category
	return nil
}
