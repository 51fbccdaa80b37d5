package services

import (
	"tutalink_backend/internal/models"
	"tutalink_backend/internal/repositories"
)

// CatalogService exposes the read-only course catalog.
type CatalogService interface {
	Courses() []models.Course
	Departments() []models.Department
	Colleges() []models.College
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) Courses() []models.Course {
	return s.catalogRepo.Courses()
}

func (s *catalogService) Departments() []models.Department {
	return s.catalogRepo.Departments()
}

func (s *catalogService) Colleges() []models.College {
	return s.catalogRepo.Colleges()
}
