package dto

type CreateApplicationRequest struct {
	Department  string   `json:"department" binding:"required"`
	YearOfStudy int      `json:"yearOfStudy" binding:"required"`
	CWA         float64  `json:"cwa" binding:"required"`
	Subjects    []string `json:"subjects" binding:"required,min=1"`
}
