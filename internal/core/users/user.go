package users

import (
	"time"
)

// User represents a registered account. The password hash is never
// serialized in responses.
type User struct {
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	Username          string    `json:"username" db:"username"`
	Email             string    `json:"email" db:"email"`
	Password          string    `json:"-" db:"password"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty" db:"profile_picture_url"`
	ID                int64     `json:"id" db:"id"`
}

// RegisterRequest is the input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the input for authenticating an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the input for PUT /users/me. All fields are
// optional; a new password requires the old one for verification.
type UpdateProfileRequest struct {
	Username          *string `json:"username,omitempty"`
	Email             *string `json:"email,omitempty"`
	OldPassword       *string `json:"old_password,omitempty"`
	NewPassword       *string `json:"new_password,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	UserID            int64   `json:"-"`
}

// UpdateFields carries the resolved column updates handed to the
// repository. Nil pointers mean "leave unchanged"; SetProfilePicture
// distinguishes clearing the picture from not touching it.
type UpdateFields struct {
	Username          *string
	Email             *string
	PasswordHash      *string
	ProfilePictureURL *string
	SetProfilePicture bool
}
