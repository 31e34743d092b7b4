package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MarinaMenezess/devSocial/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password, profile_picture_url, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.Password).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password,
			&user.ProfilePictureURL, &user.CreatedAt)
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `
		SELECT id, username, email, password, profile_picture_url, created_at
		FROM users
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password,
			&user.ProfilePictureURL, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by their email
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	user := &users.User{}
	query := `
		SELECT id, username, email, password, profile_picture_url, created_at
		FROM users
		WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password,
			&user.ProfilePictureURL, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Update applies the non-nil fields and returns the updated row. The SET
// clause is assembled dynamically so untouched columns keep their values.
func (r *postgresUserRepo) Update(ctx context.Context, id int64, fields users.UpdateFields) (*users.User, error) {
	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	args = append(args, id)

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Username != nil {
		addSet("username", *fields.Username)
	}
	if fields.Email != nil {
		addSet("email", *fields.Email)
	}
	if fields.PasswordHash != nil {
		addSet("password", *fields.PasswordHash)
	}
	if fields.SetProfilePicture {
		addSet("profile_picture_url", fields.ProfilePictureURL)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1
		RETURNING id, username, email, password, profile_picture_url, created_at`,
		strings.Join(setClauses, ", "))

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password,
			&user.ProfilePictureURL, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// mapUniqueViolation translates postgres unique constraint errors into
// domain conflicts, or returns nil when the error is something else.
func mapUniqueViolation(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "duplicate key") {
		return nil
	}
	if strings.Contains(msg, "users_username_key") {
		return users.ErrUsernameTaken
	}
	if strings.Contains(msg, "users_email_key") {
		return users.ErrEmailTaken
	}
	return nil
}
