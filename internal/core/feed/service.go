package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

type feedService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new feed query service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		repo:   repo,
		logger: logger,
	}
}

// Search returns the feed, optionally filtered and annotated for a viewer
func (s *feedService) Search(ctx context.Context, query string, viewerID *int64) ([]*posts.PostView, error) {
	query = strings.TrimSpace(query)

	views, err := s.repo.Search(ctx, query, viewerID)
	if err != nil {
		s.logger.Error("feed search failed",
			"error", err,
			"query", query)
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return views, nil
}

// ListByAuthor returns the user's own posts, newest first
func (s *feedService) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error) {
	views, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Error("author post listing failed",
			"error", err,
			"author", authorID)
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return views, nil
}

// ListFavorites returns the posts the user favorited, most recently favorited first
func (s *feedService) ListFavorites(ctx context.Context, userID int64) ([]*posts.PostView, error) {
	views, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		s.logger.Error("favorite listing failed",
			"error", err,
			"user", userID)
		return nil, fmt.Errorf("failed to list favorite posts: %w", err)
	}
	return views, nil
}
