package dto

type CreateSessionRequest struct {
	TutorID   int    `json:"tutorId" binding:"required"`
	CourseID  int    `json:"courseId"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" binding:"required,is-session-status"`
}
