package models

import "time"

// User represents a registered account. It contains identity attributes
// and the stored credential hash.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on creation.
	UserID int64 `json:"id"`

	// Username is the unique public handle of the user (3–50 characters).
	Username string `json:"username"`

	// Email is the unique, lowercased e-mail address the user logs in with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserResponse is the outward projection of a User. It carries everything
// a client may see and nothing it may not: PasswordHash has no counterpart
// here, so a response can never leak it by construction.
type UserResponse struct {
	UserID    int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a persisted User into its response projection.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
