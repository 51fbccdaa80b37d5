package repositories

import (
	"sort"
	"time"

	"tutalink_backend/internal/models"
)

// SessionRepository is the persistence boundary for bookings. "Upcoming"
// means status pending or confirmed with a date on or after the given
// day; sessions whose date string does not parse are excluded.
type SessionRepository interface {
	Create(session *models.Session) error
	FindByID(id int) (*models.Session, error)
	UpdateStatus(id int, status models.SessionStatus) (*models.Session, error)
	FindByLearner(learnerID int) []*models.Session
	FindByTutor(tutorID int) []*models.Session
	FindAll() []*models.Session
	FindUpcomingByLearner(learnerID int, now time.Time) []*models.Session
	FindUpcomingByTutor(tutorID int, now time.Time) []*models.Session
	FindAllUpcoming(now time.Time) []*models.Session
}

type sessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) SessionRepository {
	return &sessionRepository{store: store}
}

// Create assigns the next session id; all other fields are stored as
// given.
func (r *sessionRepository) Create(session *models.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session.ID = r.store.nextSessionID
	r.store.nextSessionID++
	r.store.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepository) FindByID(id int) (*models.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

// UpdateStatus overwrites the status unconditionally; validating the
// transition is the service's job.
func (r *sessionRepository) UpdateStatus(id int, status models.SessionStatus) (*models.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	session.Status = status
	r.store.sessions[id] = session
	return &session, nil
}

func (r *sessionRepository) FindByLearner(learnerID int) []*models.Session {
	return r.filter(func(s models.Session) bool {
		return s.LearnerID == learnerID
	})
}

func (r *sessionRepository) FindByTutor(tutorID int) []*models.Session {
	return r.filter(func(s models.Session) bool {
		return s.TutorID == tutorID
	})
}

func (r *sessionRepository) FindAll() []*models.Session {
	return r.filter(func(models.Session) bool { return true })
}

func (r *sessionRepository) FindUpcomingByLearner(learnerID int, now time.Time) []*models.Session {
	return r.filter(func(s models.Session) bool {
		return s.LearnerID == learnerID && isUpcoming(s, now)
	})
}

func (r *sessionRepository) FindUpcomingByTutor(tutorID int, now time.Time) []*models.Session {
	return r.filter(func(s models.Session) bool {
		return s.TutorID == tutorID && isUpcoming(s, now)
	})
}

func (r *sessionRepository) FindAllUpcoming(now time.Time) []*models.Session {
	return r.filter(func(s models.Session) bool {
		return isUpcoming(s, now)
	})
}

func (r *sessionRepository) filter(keep func(models.Session) bool) []*models.Session {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var sessions []*models.Session
	for _, session := range r.store.sessions {
		if keep(session) {
			s := session
			sessions = append(sessions, &s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions
}

func isUpcoming(s models.Session, now time.Time) bool {
	if s.Status != models.SessionStatusPending && s.Status != models.SessionStatusConfirmed {
		return false
	}
	date, err := time.Parse(time.DateOnly, s.Date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !date.Before(today)
}
