package models

// Session is a tutoring booking between a learner and a tutor.
// Date is a plain "YYYY-MM-DD" string; Start/EndTime are "HH:MM".
type Session struct {
	ID            int           `json:"id"`
	LearnerID     int           `json:"learnerId"`
	TutorID       int           `json:"tutorId"`
	CourseID      int           `json:"courseId,omitempty"`
	Date          string        `json:"date"`
	StartTime     string        `json:"startTime"`
	EndTime       string        `json:"endTime"`
	Location      string        `json:"location"`
	Status        SessionStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Amount        float64       `json:"amount"`
	Notes         string        `json:"notes,omitempty"`
}
