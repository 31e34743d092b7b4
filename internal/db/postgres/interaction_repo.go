package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MarinaMenezess/devSocial/internal/core/interactions"
)

type postgresInteractionRepo struct {
	db *sql.DB
}

// NewInteractionRepository creates a new PostgreSQL repository over the
// likes and favorites join tables.
func NewInteractionRepository(db *sql.DB) interactions.Repository {
	return &postgresInteractionRepo{db: db}
}

// tableFor maps the interaction kind to its table. Both tables share the
// (post_id, user_id) uniqueness constraint the toggle relies on. The kind
// is a closed enum, never user input, so interpolating the name is safe.
func tableFor(kind interactions.Kind) (string, error) {
	switch kind {
	case interactions.KindLike:
		return "likes", nil
	case interactions.KindFavorite:
		return "favorites", nil
	default:
		return "", fmt.Errorf("unknown interaction kind: %s", kind)
	}
}

// Remove deletes the (post, user) row, reporting whether a row existed
func (r *postgresInteractionRepo) Remove(ctx context.Context, kind interactions.Kind, postID, userID int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1 AND user_id = $2`, table)

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// Insert adds the (post, user) row. ON CONFLICT DO NOTHING makes the
// insert safe under concurrent duplicate toggles: the loser sees zero
// rows returned instead of a unique violation.
func (r *postgresInteractionRepo) Insert(ctx context.Context, kind interactions.Kind, postID, userID int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
		RETURNING post_id`, table)

	var insertedPostID int64
	err = r.db.QueryRowContext(ctx, query, postID, userID).Scan(&insertedPostID)

	// ON CONFLICT DO NOTHING returns no rows when the pair already exists
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return false, interactions.ErrPostNotFound
		}
		return false, fmt.Errorf("failed to insert %s: %w", kind, err)
	}

	return true, nil
}
