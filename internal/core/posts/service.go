package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type postService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new post service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

// CreatePost validates the request and inserts a new post owned by the author
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error) {
	if err := validateTitleContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	post := &Post{
		AuthorID: req.AuthorID,
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		ImageURL: req.ImageURL,
	}

	id, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"author", req.AuthorID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post", id,
		"author", req.AuthorID)

	return &CreatePostResponse{PostID: id}, nil
}

// GetPost returns the post view with author fields and live counts
func (s *postService) GetPost(ctx context.Context, postID int64) (*PostView, error) {
	view, err := s.repo.GetView(ctx, postID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdatePost overwrites title/content after verifying ownership.
// Image URL and author are immutable via this path.
func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) error {
	if err := validateTitleContent(req.Title, req.Content); err != nil {
		return err
	}

	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != req.RequesterID {
		s.logger.Warn("post update rejected: requester is not the owner",
			"post", req.PostID,
			"owner", post.AuthorID,
			"requester", req.RequesterID)
		return ErrNotPostOwner
	}

	if err := s.repo.UpdateContent(ctx, req.PostID, strings.TrimSpace(req.Title), strings.TrimSpace(req.Content)); err != nil {
		return err
	}

	s.logger.Info("post updated",
		"post", req.PostID,
		"author", req.RequesterID)

	return nil
}

// DeletePost removes the post after verifying ownership. The repository
// reports ErrStorageInconsistency when the delete affected zero rows, so a
// concurrent delete never turns into a false success.
func (s *postService) DeletePost(ctx context.Context, postID, requesterID int64) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		s.logger.Warn("post delete rejected: requester is not the owner",
			"post", postID,
			"owner", post.AuthorID,
			"requester", requesterID)
		return ErrNotPostOwner
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		s.logger.Error("failed to delete post",
			"error", err,
			"post", postID)
		return err
	}

	s.logger.Info("post deleted",
		"post", postID,
		"author", requesterID)

	return nil
}

func validateTitleContent(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}
