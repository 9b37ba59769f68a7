package dto

// GrantAdminRequest gives back-office access to an email address.
type GrantAdminRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateAdminRequest captures partial updates to an admin grant.
type UpdateAdminRequest struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
