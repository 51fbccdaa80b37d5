package models

type UserRole string
type SessionStatus string
type PaymentStatus string
type ApplicationStatus string

const (
	UserRoleLearner UserRole = "learner"
	UserRoleTutor   UserRole = "tutor"
	UserRoleAdmin   UserRole = "admin"

	SessionStatusPending   SessionStatus = "pending"
	SessionStatusConfirmed SessionStatus = "confirmed"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid reports whether the role is one of the closed set. Transition
// sites must reject anything else instead of storing it.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleLearner, UserRoleTutor, UserRoleAdmin:
		return true
	}
	return false
}

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusPending, SessionStatusConfirmed, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}
