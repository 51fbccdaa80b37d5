package models

// Review is left once by a learner for a tutor; there is no update
// endpoint, so records are effectively immutable after creation.
// CreatedAt is an ISO timestamp string; clients may supply their own.
type Review struct {
	ID            int    `json:"id"`
	LearnerID     int    `json:"learnerId"`
	TutorID       int    `json:"tutorId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CourseID      int    `json:"courseId,omitempty"`
	CreatedAt     string `json:"createdAt"`
	TutorResponse string `json:"tutorResponse,omitempty"`
}
