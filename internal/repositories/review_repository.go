package repositories

import (
	"sort"

	"tutalink_backend/internal/models"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByLearner(learnerID int) []*models.Review
	FindByTutor(tutorID int) []*models.Review
	FindAll() []*models.Review
	FindRecent(limit int) []*models.Review
}

type reviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) Create(review *models.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	review.ID = r.store.nextReviewID
	r.store.nextReviewID++
	r.store.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepository) FindByLearner(learnerID int) []*models.Review {
	return r.filter(func(rev models.Review) bool { return rev.LearnerID == learnerID })
}

func (r *reviewRepository) FindByTutor(tutorID int) []*models.Review {
	return r.filter(func(rev models.Review) bool { return rev.TutorID == tutorID })
}

func (r *reviewRepository) FindAll() []*models.Review {
	return r.filter(func(models.Review) bool { return true })
}

// FindRecent returns the newest reviews by CreatedAt. The field is an
// RFC3339 string, which orders lexicographically; client-supplied
// timestamps in other formats sort wherever their text does.
func (r *reviewRepository) FindRecent(limit int) []*models.Review {
	reviews := r.FindAll()
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews
}

func (r *reviewRepository) filter(keep func(models.Review) bool) []*models.Review {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var reviews []*models.Review
	for _, review := range r.store.reviews {
		if keep(review) {
			rev := review
			reviews = append(reviews, &rev)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews
}
