package models

// TutorApplication is keyed 1:1 by UserID; a resubmission replaces the
// previous record, no history is kept.
type TutorApplication struct {
	UserID         int               `json:"userId"`
	FullName       string            `json:"fullName"`
	Department     string            `json:"department"`
	YearOfStudy    int               `json:"yearOfStudy"`
	CWA            float64           `json:"cwa"`
	Subjects       []string          `json:"subjects"`
	TranscriptPath string            `json:"transcriptPath"`
	Status         ApplicationStatus `json:"status"`
}

// MinimumCWA gates tutor eligibility at the submission boundary.
const MinimumCWA = 3.4
