package models

import "strings"

// Normalizer is implemented by request bodies that canonicalize their
// fields (trimming, case folding) before validation.
type Normalizer interface {
	Normalize()
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

// UpdateUserRequest is the body of PATCH /api/users/me and PATCH /api/users/{id}.
// Absent fields are left unchanged; present fields must be valid.
type UpdateUserRequest struct {
	Email *string `json:"email" validate:"omitnil,email"`
	Name  *string `json:"name" validate:"omitnil,min=2"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		email := normalizeEmail(*r.Email)
		r.Email = &email
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
}

// ToUpdate converts the request into a repository-level partial update.
func (r UpdateUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{Email: r.Email, Name: r.Name}
}

// ChangePasswordRequest is the body of PATCH /api/users/me/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
