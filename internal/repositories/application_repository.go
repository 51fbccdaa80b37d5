package repositories

import (
	"sort"

	"tutalink_backend/internal/models"
)

// ApplicationRepository stores at most one tutor application per user.
// Upsert replaces any prior record for the same user, whatever its
// status.
type ApplicationRepository interface {
	Upsert(app *models.TutorApplication) error
	FindByUserID(userID int) (*models.TutorApplication, error)
	UpdateStatus(userID int, status models.ApplicationStatus) (*models.TutorApplication, error)
	FindAll() []*models.TutorApplication
}

type applicationRepository struct {
	store *Store
}

func NewApplicationRepository(store *Store) ApplicationRepository {
	return &applicationRepository{store: store}
}

func (r *applicationRepository) Upsert(app *models.TutorApplication) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.applications[app.UserID] = *app
	return nil
}

func (r *applicationRepository) FindByUserID(userID int) (*models.TutorApplication, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	app, ok := r.store.applications[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (r *applicationRepository) UpdateStatus(userID int, status models.ApplicationStatus) (*models.TutorApplication, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	app, ok := r.store.applications[userID]
	if !ok {
		return nil, ErrNotFound
	}
	app.Status = status
	r.store.applications[userID] = app
	return &app, nil
}

func (r *applicationRepository) FindAll() []*models.TutorApplication {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	apps := make([]*models.TutorApplication, 0, len(r.store.applications))
	for _, app := range r.store.applications {
		a := app
		apps = append(apps, &a)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].UserID < apps[j].UserID })
	return apps
}
