package service

import (
	"context"

	"github.com/larosas-pizzeria/ordering-api/internal/menu"
	"github.com/larosas-pizzeria/ordering-api/internal/models"
	"github.com/larosas-pizzeria/ordering-api/internal/repository"
)

// MenuService handles catalog browsing
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// Browse returns the visible items for a filter, each with its resolved
// selling price. selected maps item id to an explicitly chosen variant
// label.
func (s *MenuService) Browse(ctx context.Context, f menu.Filter, selected map[string]string) ([]menu.PricedItem, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return menu.Visible(catalog, f, selected), nil
}

// Categories returns the category choices offered for a section
func (s *MenuService) Categories(ctx context.Context, section models.MenuSection) ([]models.Category, error) {
	catalog, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return menu.Categories(catalog, section), nil
}

// Catalog returns the full catalog in display order
func (s *MenuService) Catalog(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.GetAll(ctx)
}
