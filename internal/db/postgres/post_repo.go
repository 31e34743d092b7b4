package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post and returns its generated id
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, title, content, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.AuthorID, post.Title, post.Content, post.ImageURL).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	return post.ID, nil
}

// GetByID retrieves the raw post row
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		SELECT id, user_id, title, content, image_url, created_at, updated_at
		FROM posts
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.ImageURL,
			&post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// GetView retrieves the post joined with author fields and live counts.
// Counts are computed by subselect at read time so they cannot drift from
// the likes/comments tables.
func (r *postgresPostRepo) GetView(ctx context.Context, id int64) (*posts.PostView, error) {
	view := &posts.PostView{}
	query := `
		SELECT
			p.id, p.title, p.content, p.image_url, p.created_at, p.updated_at,
			u.id, u.username, u.profile_picture_url,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&view.ID, &view.Title, &view.Content, &view.ImageURL, &view.CreatedAt, &view.UpdatedAt,
			&view.Author.ID, &view.Author.Username, &view.Author.ProfilePictureURL,
			&view.LikesCount, &view.CommentsCount)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	return view, nil
}

// UpdateContent overwrites title/content and bumps updated_at
func (r *postgresPostRepo) UpdateContent(ctx context.Context, id int64, title, content string) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, title, content)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// Delete removes the post row. Likes, favorites and comments follow via
// ON DELETE CASCADE. A delete that affects zero rows after the service
// verified ownership means another request won the race; report it
// instead of a false success.
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return posts.ErrStorageInconsistency
	}

	return nil
}
