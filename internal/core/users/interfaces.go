package users

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register validates input, hashes the password and creates the account
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies the credentials and returns the account.
	// Token issuance is the caller's concern.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// GetByID retrieves an account by id, ErrUserNotFound if absent
	GetByID(ctx context.Context, id int64) (*User, error)

	// UpdateProfile applies the requested field changes. Password changes
	// require the old password; username/email collisions are conflicts.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error)
}

// Repository defines the data access interface for accounts
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update applies the non-nil fields and returns the updated row.
	// Unique violations map to ErrUsernameTaken / ErrEmailTaken.
	Update(ctx context.Context, id int64, fields UpdateFields) (*User, error)
}
