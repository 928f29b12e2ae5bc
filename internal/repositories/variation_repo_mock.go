package repositories

import (
	"fmt"
	"sort"
	"sync"

	"loja/internal/models"
)

// MockVariationRepository is an in-memory implementation of VariationRepository.
type MockVariationRepository struct {
	variations map[uint]models.ProductVariation
	nextID     uint
	mu         sync.RWMutex
}

// NewMockVariationRepository creates a new instance of MockVariationRepository.
func NewMockVariationRepository() *MockVariationRepository {
	return &MockVariationRepository{
		variations: make(map[uint]models.ProductVariation),
		nextID:     1,
	}
}

// ListByProduct returns the active variations of a product, ordered by name
// then value.
func (r *MockVariationRepository) ListByProduct(productID uint) ([]models.ProductVariation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variationList := make([]models.ProductVariation, 0)
	for _, v := range r.variations {
		if v.ProductID != productID || !v.Active {
			continue
		}
		variationList = append(variationList, v)
	}

	sort.Slice(variationList, func(i, j int) bool {
		if variationList[i].Name != variationList[j].Name {
			return variationList[i].Name < variationList[j].Name
		}
		return variationList[i].Value < variationList[j].Value
	})
	return variationList, nil
}

// Create adds a new variation.
func (r *MockVariationRepository) Create(variation *models.ProductVariation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if variation.ID == 0 {
		variation.ID = r.nextID
		r.nextID++
	} else if variation.ID >= r.nextID {
		r.nextID = variation.ID + 1
	}
	r.variations[variation.ID] = *variation
	return nil
}

// Update modifies an existing variation, scoped to its product.
func (r *MockVariationRepository) Update(variation *models.ProductVariation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.variations[variation.ID]
	if !ok || existing.ProductID != variation.ProductID {
		return fmt.Errorf("variation with ID %d not found for product %d", variation.ID, variation.ProductID)
	}
	r.variations[variation.ID] = *variation
	return nil
}

// Deactivate marks a variation inactive, scoped to its product.
func (r *MockVariationRepository) Deactivate(id, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.variations[id]
	if !ok || existing.ProductID != productID {
		return fmt.Errorf("variation with ID %d not found for product %d", id, productID)
	}
	existing.Active = false
	r.variations[id] = existing
	return nil
}
