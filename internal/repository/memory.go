package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"realestate/server/internal/models"
)

// MemoryRepository is an in-memory PropertyRepository. It backs the service
// and handler tests, where a real database would only add noise.
type MemoryRepository struct {
	mu         sync.RWMutex
	properties map[int]models.Property
	nextID     int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		properties: make(map[int]models.Property),
		nextID:     1,
	}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Property, 0, len(r.properties))
	for _, p := range r.properties {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *MemoryRepository) GetAvailable(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var available []models.Property
	for _, p := range r.properties {
		if p.IsAvailable {
			available = append(available, p)
		}
	}
	sortByPrice(available)
	return available, nil
}

func (r *MemoryRepository) GetByCity(ctx context.Context, city string) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Property
	for _, p := range r.properties {
		if strings.EqualFold(p.City, city) {
			matched = append(matched, p)
		}
	}
	sortByPrice(matched)
	return matched, nil
}

func (r *MemoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.properties[id]
	return ok, nil
}

func (r *MemoryRepository) Add(ctx context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	property.ID = r.nextID
	r.nextID++
	r.properties[property.ID] = *property
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.properties[property.ID] = *property
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, property *models.Property) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[property.ID]; !ok {
		return false, nil
	}
	delete(r.properties, property.ID)
	return true, nil
}

// Len reports the number of stored properties. Test helper.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.properties)
}

// sortByPrice orders ascending by price, breaking ties by id so the order
// stays stable across runs.
func sortByPrice(properties []models.Property) {
	sort.Slice(properties, func(i, j int) bool {
		if properties[i].Price.Equal(properties[j].Price) {
			return properties[i].ID < properties[j].ID
		}
		return properties[i].Price.LessThan(properties[j].Price)
	})
}
