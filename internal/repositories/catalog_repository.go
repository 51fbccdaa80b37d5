package repositories

import "tutalink_backend/internal/models"

// CatalogRepository exposes the seeded read-only course catalog that
// session bookings reference by courseId.
type CatalogRepository interface {
	Courses() []models.Course
	Departments() []models.Department
	Colleges() []models.College
}

type catalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) Courses() []models.Course {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Course, len(r.store.courses))
	copy(out, r.store.courses)
	return out
}

func (r *catalogRepository) Departments() []models.Department {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Department, len(r.store.departments))
	copy(out, r.store.departments)
	return out
}

func (r *catalogRepository) Colleges() []models.College {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.College, len(r.store.colleges))
	copy(out, r.store.colleges)
	return out
}
