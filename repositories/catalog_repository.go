package repositories

import (
	"fmt"
	"slices"

	"fartburger/models"
)

// CatalogRepository serves the static menu. It is loaded once and never mutated.
type CatalogRepository struct {
	categories []models.Category
	items      []models.MenuItem
	byID       map[string]int
}

func NewCatalogRepository() (*CatalogRepository, error) {
	return NewCatalogRepositoryFrom(defaultCategories, defaultMenu)
}

// NewCatalogRepositoryFrom validates items and indexes them by id.
func NewCatalogRepositoryFrom(categories []models.Category, items []models.MenuItem) (*CatalogRepository, error) {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		byID[item.ID] = i
	}
	return &CatalogRepository{
		categories: slices.Clone(categories),
		items:      slices.Clone(items),
		byID:       byID,
	}, nil
}

func (r *CatalogRepository) GetAllCategories() []models.Category {
	return slices.Clone(r.categories)
}

// GetItems returns the menu filtered by category; "all" or empty means everything.
func (r *CatalogRepository) GetItems(category string) []models.MenuItem {
	if category == "" || category == models.CategoryAll {
		return slices.Clone(r.items)
	}
	items := []models.MenuItem{}
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

func (r *CatalogRepository) FindByID(id string) (models.MenuItem, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return r.items[i], true
}
