package repositories

import (
	"sort"
	"strings"

	"tutalink_backend/internal/models"
)

// UserRepository is the persistence boundary for user accounts. Lookups
// by username and email are case-insensitive. Implementations return
// copies, so callers mutate nothing until they call Update.
type UserRepository interface {
	FindByID(id int) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id int) error
	FindAll() []*models.User
}

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(id int) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Username, username) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next user id. Ids are never reused, even after
// deletes.
func (r *userRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = r.store.nextUserID
	r.store.nextUserID++
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.store.users[user.ID] = *user
	return nil
}

// Delete is a hard delete; sessions and reviews referencing the user are
// left in place.
func (r *userRepository) Delete(id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.users, id)
	return nil
}

func (r *userRepository) FindAll() []*models.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*models.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		u := user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
