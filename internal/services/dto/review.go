package dto

// CreateReviewRequest: the rating range is deliberately not bounded here
// and CreatedAt is trusted when the client sends one, matching the
// public API's observed behavior.
type CreateReviewRequest struct {
	TutorID   int    `json:"tutorId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
	CourseID  int    `json:"courseId"`
	CreatedAt string `json:"createdAt"`
}
