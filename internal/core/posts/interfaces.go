package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates and persists a new post owned by req.AuthorID
	CreatePost(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error)

	// GetPost returns the post joined with author identity and live counts
	GetPost(ctx context.Context, postID int64) (*PostView, error)

	// UpdatePost overwrites title and content after ownership verification
	UpdatePost(ctx context.Context, req UpdatePostRequest) error

	// DeletePost removes the post and, transitively, its likes, favorites
	// and comments (cascade enforced by the schema)
	DeletePost(ctx context.Context, postID, requesterID int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and returns its generated id
	Create(ctx context.Context, post *Post) (int64, error)

	// GetByID retrieves the raw post row, ErrPostNotFound if absent
	GetByID(ctx context.Context, id int64) (*Post, error)

	// GetView retrieves the post joined with author fields and live counts
	GetView(ctx context.Context, id int64) (*PostView, error)

	// UpdateContent overwrites title/content and bumps updated_at.
	// Returns ErrPostNotFound when no row matched.
	UpdateContent(ctx context.Context, id int64, title, content string) error

	// Delete removes the post row. Returns ErrStorageInconsistency when
	// the delete affected zero rows.
	Delete(ctx context.Context, id int64) error
}
