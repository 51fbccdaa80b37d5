package dto

// UpdateProfileRequest carries the owner-editable profile fields.
// Pointers distinguish "not sent" from an explicit empty value.
type UpdateProfileRequest struct {
	FullName     *string `json:"fullName,omitempty"`
	Department   *string `json:"department,omitempty"`
	YearOfStudy  *int    `json:"yearOfStudy,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,is-user-role"`
}

type UpdateApprovalRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}
