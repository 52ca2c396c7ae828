package repository

import (
	"context"
	"errors"

	"github.com/larosas-pizzeria/ordering-api/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines the interface for catalog data access
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository over the static catalog.
// The catalog is ordered: display order follows the seed data, so items are
// kept in a slice with a side index for lookups.
type InMemoryMenuRepository struct {
	items []models.MenuItem
	byID  map[string]int
}

// NewInMemoryMenuRepository creates a menu repository seeded with the full
// restaurant catalog
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	items := seedMenu()
	byID := make(map[string]int, len(items))
	for i, it := range items {
		byID[it.ID] = i
	}
	return &InMemoryMenuRepository{
		items: items,
		byID:  byID,
	}
}

// GetAll returns the catalog in display order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	out := make([]models.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns a single catalog entry
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	item := r.items[i]
	return &item, nil
}
