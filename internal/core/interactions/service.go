package interactions

import (
	"context"
	"fmt"
	"log/slog"
)

type toggleService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new interaction toggle service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &toggleService{
		repo:   repo,
		logger: logger,
	}
}

// ToggleLike flips the liked state for (postID, userID)
func (s *toggleService) ToggleLike(ctx context.Context, postID, userID int64) (*ToggleResult, error) {
	return s.toggle(ctx, KindLike, postID, userID)
}

// ToggleFavorite flips the favorited state for (postID, userID)
func (s *toggleService) ToggleFavorite(ctx context.Context, postID, userID int64) (*ToggleResult, error) {
	return s.toggle(ctx, KindFavorite, postID, userID)
}

// toggle implements the shared flip algorithm. Delete runs first: if a row
// was removed the new state is inactive. Otherwise a conflict-tolerant
// insert runs; when the insert loses a race against an identical concurrent
// toggle the row already exists, which is the same observable outcome as
// having inserted it, so the state is reported active rather than erroring.
func (s *toggleService) toggle(ctx context.Context, kind Kind, postID, userID int64) (*ToggleResult, error) {
	removed, err := s.repo.Remove(ctx, kind, postID, userID)
	if err != nil {
		s.logger.Error("toggle delete failed",
			"error", err,
			"kind", kind,
			"post", postID,
			"user", userID)
		return nil, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}

	if removed {
		s.logger.Info("toggle deactivated",
			"kind", kind,
			"post", postID,
			"user", userID)
		return &ToggleResult{Active: false}, nil
	}

	inserted, err := s.repo.Insert(ctx, kind, postID, userID)
	if err != nil {
		if err == ErrPostNotFound {
			return nil, err
		}
		s.logger.Error("toggle insert failed",
			"error", err,
			"kind", kind,
			"post", postID,
			"user", userID)
		return nil, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}

	if !inserted {
		s.logger.Warn("toggle insert lost race, row already present",
			"kind", kind,
			"post", postID,
			"user", userID)
	} else {
		s.logger.Info("toggle activated",
			"kind", kind,
			"post", postID,
			"user", userID)
	}

	return &ToggleResult{Active: true}, nil
}
