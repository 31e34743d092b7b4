package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Loose email shape check. Deliverability is not our problem; catching
// obvious typos before a unique-constraint round trip is.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 6

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// Register validates input, hashes the password and creates the account
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	if req.Email == "" {
		return nil, NewValidationError("email", "email is required")
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, NewValidationError("email", "invalid email address")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"user", user.ID,
		"username", user.Username)

	return user, nil
}

// Login verifies email + password against the stored bcrypt hash
func (s *userService) Login(ctx context.Context, req LoginRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login rejected: wrong password",
			"user", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves an account by id
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies the requested field changes after verification
func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	current, err := s.repo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var fields UpdateFields

	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		username := strings.TrimSpace(*req.Username)
		fields.Username = &username
	}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !emailRegex.MatchString(email) {
			return nil, NewValidationError("email", "invalid email address")
		}
		fields.Email = &email
	}

	if req.ProfilePictureURL != nil {
		fields.SetProfilePicture = true
		if strings.TrimSpace(*req.ProfilePictureURL) != "" {
			fields.ProfilePictureURL = req.ProfilePictureURL
		}
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		if req.OldPassword == nil || *req.OldPassword == "" {
			return nil, NewValidationError("old_password", "old password is required to change the password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(current.Password), []byte(*req.OldPassword)); err != nil {
			return nil, ErrWrongPassword
		}
		if len(*req.NewPassword) < minPasswordLength {
			return nil, NewValidationError("new_password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hash := string(hashed)
		fields.PasswordHash = &hash
	}

	if fields.Username == nil && fields.Email == nil && fields.PasswordHash == nil && !fields.SetProfilePicture {
		return nil, NewValidationError("body", "no fields to update")
	}

	updated, err := s.repo.Update(ctx, req.UserID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated",
		"user", req.UserID,
		"password_changed", fields.PasswordHash != nil)

	return updated, nil
}
