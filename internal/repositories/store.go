package repositories

import (
	"errors"
	"sync"

	"tutalink_backend/internal/models"
)

// ErrNotFound is returned by repositories when a record id is absent.
var ErrNotFound = errors.New("record not found")

// Store is the process-wide in-memory entity store: one map per entity
// type plus per-type monotonic id counters. The mutex only keeps map
// access safe under Gin's per-request goroutines; there are no
// transactions and concurrent writers apply last-write-wins.
type Store struct {
	mu sync.RWMutex

	users        map[int]models.User
	sessions     map[int]models.Session
	reviews      map[int]models.Review
	applications map[int]models.TutorApplication
	configs      map[string]models.SystemConfig
	footer       models.FooterContent

	courses     []models.Course
	departments []models.Department
	colleges    []models.College

	nextUserID    int
	nextSessionID int
	nextReviewID  int
	nextConfigID  int
}

// NewStore builds an empty store with the demo fixtures the platform
// ships with: two seeded admin accounts, the empty Stripe config entries,
// default footer content and a small course catalog.
func NewStore() *Store {
	s := &Store{
		users:         make(map[int]models.User),
		sessions:      make(map[int]models.Session),
		reviews:       make(map[int]models.Review),
		applications:  make(map[int]models.TutorApplication),
		configs:       make(map[string]models.SystemConfig),
		nextUserID:    1,
		nextSessionID: 1,
		nextReviewID:  1,
		nextConfigID:  1,
	}
	s.seed()
	return s
}

// Seed credentials carried over from the original deployment. The first
// is a valid scrypt "hexdigest.hexsalt" record for "admin123". The second
// is a bcrypt-format string the scrypt comparator can never match, so the
// "admin123" account cannot log in; kept verbatim as a flagged
// inconsistency of the source data rather than silently repaired.
const (
	seedAdminPassword  = "dd12dff51e73ab3bc5230c6e78fbdd4f4c493f6cc5a7a127e8b0a5ade1a06aabf59ce7da9bfd2792027e5e43a9f9cd4bf3c2f6e54ef871c4c713e7662bf362df.b1a5ab3849e07ec2b0ecc9a3de50829d"
	seedAdmin2Password = "$2a$10$XWiOkTZsQVJFfMu/2X1kAOlVY6NXeIA.jd3fqXS05cGVvHn/NCL4K"
)

func (s *Store) seed() {
	for _, u := range []models.User{
		{
			Username:   "admin",
			Email:      "admin@tutalink.com",
			Password:   seedAdminPassword,
			FullName:   "Admin User",
			Role:       models.UserRoleAdmin,
			IsApproved: true,
		},
		{
			Username:   "admin123",
			Email:      "admin2@tutalink.com",
			Password:   seedAdmin2Password,
			FullName:   "Admin User",
			Role:       models.UserRoleAdmin,
			IsApproved: true,
		},
	} {
		u.ID = s.nextUserID
		s.nextUserID++
		s.users[u.ID] = u
	}

	for key, description := range map[string]string{
		"STRIPE_SECRET_KEY":      "Stripe Secret Key for payment processing",
		"VITE_STRIPE_PUBLIC_KEY": "Stripe Public Key for client-side payment forms",
	} {
		s.configs[key] = models.SystemConfig{
			ID:          s.nextConfigID,
			Key:         key,
			Value:       "",
			Description: description,
		}
		s.nextConfigID++
	}

	s.footer = models.FooterContent{
		ID:        1,
		Copyright: "© 2023 TutaLink. All rights reserved. KNUST Student Connection Platform.",
		Links: []models.FooterLink{
			{Text: "Terms of Service", URL: "/terms"},
			{Text: "Privacy Policy", URL: "/privacy"},
			{Text: "Contact Us", URL: "/contact"},
		},
		SocialMedia: []models.SocialMediaLink{
			{Platform: "facebook", URL: "https://facebook.com"},
			{Platform: "instagram", URL: "https://instagram.com"},
			{Platform: "twitter", URL: "https://twitter.com"},
		},
	}

	s.colleges = []models.College{
		{ID: 1, Name: "College of Science"},
		{ID: 2, Name: "College of Engineering"},
	}
	s.departments = []models.Department{
		{ID: 1, Name: "Mathematics", CollegeID: 1},
		{ID: 2, Name: "Computer Science", CollegeID: 1},
		{ID: 3, Name: "Electrical Engineering", CollegeID: 2},
	}
	s.courses = []models.Course{
		{ID: 1, Code: "MATH 151", Name: "Calculus I", Description: "Limits, derivatives and integrals", DepartmentID: 1},
		{ID: 2, Code: "MATH 251", Name: "Linear Algebra", Description: "Vector spaces and linear maps", DepartmentID: 1},
		{ID: 3, Code: "CSM 183", Name: "Introduction to Programming", DepartmentID: 2},
		{ID: 4, Code: "EE 152", Name: "Circuit Theory", DepartmentID: 3},
	}
}
