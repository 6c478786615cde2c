package services

import (
	"fartburger/models"
	"fartburger/repositories"
)

type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCatalogService(repo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: repo}
}

func (s *CatalogService) GetAllCategories() []models.Category {
	return s.catalogRepo.GetAllCategories()
}

func (s *CatalogService) GetMenu(category string) []models.MenuItem {
	return s.catalogRepo.GetItems(category)
}

func (s *CatalogService) GetItemByID(id string) (*models.MenuItem, error) {
	item, ok := s.catalogRepo.FindByID(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (s *CatalogService) FindByID(id string) (models.MenuItem, bool) {
	return s.catalogRepo.FindByID(id)
}
