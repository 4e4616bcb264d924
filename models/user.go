package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is never exposed via JSON.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique, normalized (trimmed, lower-cased) login identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Email *string
	Name  *string
}

// IsEmpty reports whether the update carries no fields to change.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil
}
