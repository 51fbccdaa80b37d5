package models

// User is the single account record for learners, tutors and admins.
// Password holds the scrypt digest in "hexdigest.hexsalt" form and is
// never serialized.
type User struct {
	ID               int      `json:"id"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Password         string   `json:"-"`
	FullName         string   `json:"fullName,omitempty"`
	Role             UserRole `json:"role"`
	Department       string   `json:"department,omitempty"`
	YearOfStudy      int      `json:"yearOfStudy,omitempty"`
	ProfileImage     string   `json:"profileImage,omitempty"`
	WalletBalance    float64  `json:"walletBalance"`
	StripeCustomerID string   `json:"stripeCustomerId,omitempty"`
	CWA              float64  `json:"cwa,omitempty"`
	IsApproved       bool     `json:"isApproved"`
	TranscriptPath   string   `json:"transcriptPath,omitempty"`
}
