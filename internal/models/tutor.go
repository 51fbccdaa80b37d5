package models

// Tutor is the read-side view of a user with role=tutor as shown in the
// directory: the user's public fields plus the derived rating and their
// reviews. Subjects, Price and Availability are demo placeholders until a
// tutor profile table exists.
type Tutor struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	FullName     string   `json:"fullName,omitempty"`
	Role         UserRole `json:"role"`
	Department   string   `json:"department,omitempty"`
	YearOfStudy  int      `json:"yearOfStudy,omitempty"`
	CWA          float64  `json:"cwa,omitempty"`
	Rating       float64  `json:"rating"`
	Subjects     []string `json:"subjects"`
	Price        float64  `json:"price"`
	Availability []string `json:"availability"`
	Reviews      []Review `json:"reviews"`
	IsApproved   bool     `json:"isApproved"`
}
