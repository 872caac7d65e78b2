package models

// User is a dashboard operator account.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,phone"`
	RoleID   int64  `json:"role_id" validate:"required"`
	RoleName string `json:"role_name,omitempty"`
	// Password is only sent on create or when changing it.
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive bool   `json:"is_active"`
	Audit
}

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
