package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MarinaMenezess/devSocial/internal/core/feed"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

// postViewColumns is the shared projection for feed queries. The count
// subselects keep likes_count/comments_count live aggregates; they are
// never stored.
const postViewColumns = `
	p.id, p.title, p.content, p.image_url, p.created_at, p.updated_at,
	u.id, u.username, u.profile_picture_url,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count`

type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feed.Repository {
	return &postgresFeedRepo{db: db}
}

// Search returns posts newest-first, optionally filtered by a
// case-insensitive substring over title OR content. When a viewer is
// present each row additionally carries liked_by_user computed by an
// EXISTS check against the likes table; anonymous calls select NULL so
// the flag stays absent from the JSON.
func (r *postgresFeedRepo) Search(ctx context.Context, query string, viewerID *int64) ([]*posts.PostView, error) {
	var (
		sqlQuery string
		args     []interface{}
	)

	viewerSelect := `NULL`
	if viewerID != nil {
		args = append(args, *viewerID)
		viewerSelect = fmt.Sprintf(
			`EXISTS (SELECT 1 FROM likes lv WHERE lv.post_id = p.id AND lv.user_id = $%d)`, len(args))
	}

	where := ""
	if query != "" {
		args = append(args, "%"+query+"%")
		where = fmt.Sprintf(`WHERE p.title ILIKE $%d OR p.content ILIKE $%d`, len(args), len(args))
	}

	sqlQuery = fmt.Sprintf(`
		SELECT %s, %s AS liked_by_viewer
		FROM posts p
		JOIN users u ON p.user_id = u.id
		%s
		ORDER BY p.created_at DESC, p.id DESC`,
		postViewColumns, viewerSelect, where)

	return r.queryViews(ctx, sqlQuery, args...)
}

// ListByAuthor returns the user's own posts, newest first
func (r *postgresFeedRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error) {
	sqlQuery := fmt.Sprintf(`
		SELECT %s, NULL AS liked_by_viewer
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC, p.id DESC`,
		postViewColumns)

	return r.queryViews(ctx, sqlQuery, authorID)
}

// ListFavorites returns the posts the user favorited, ordered by when
// they were favorited, newest first.
func (r *postgresFeedRepo) ListFavorites(ctx context.Context, userID int64) ([]*posts.PostView, error) {
	sqlQuery := fmt.Sprintf(`
		SELECT %s, NULL AS liked_by_viewer
		FROM favorites f
		JOIN posts p ON f.post_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, p.id DESC`,
		postViewColumns)

	return r.queryViews(ctx, sqlQuery, userID)
}

func (r *postgresFeedRepo) queryViews(ctx context.Context, query string, args ...interface{}) ([]*posts.PostView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("feed query failed: %w", err)
	}
	defer rows.Close()

	views := make([]*posts.PostView, 0)
	for rows.Next() {
		view := &posts.PostView{}
		var likedByViewer sql.NullBool

		err := rows.Scan(
			&view.ID, &view.Title, &view.Content, &view.ImageURL,
			&view.CreatedAt, &view.UpdatedAt,
			&view.Author.ID, &view.Author.Username, &view.Author.ProfilePictureURL,
			&view.LikesCount, &view.CommentsCount,
			&likedByViewer,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post view: %w", err)
		}

		if likedByViewer.Valid {
			liked := likedByViewer.Bool
			view.LikedByViewer = &liked
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("feed row iteration failed: %w", err)
	}

	return views, nil
}
