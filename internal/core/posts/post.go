package posts

import (
	"time"
)

// Post represents a forum post as stored in the database.
// The author is immutable after creation; only title and content may change.
type Post struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"user_id" db:"user_id"`
}

// AuthorView carries the author display fields embedded in post views.
type AuthorView struct {
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	Username          string  `json:"username"`
	ID                int64   `json:"id"`
}

// PostView is the read model returned by the get and feed endpoints.
// LikesCount and CommentsCount are live aggregates computed per read,
// never stored counters. LikedByViewer is only set when the request
// carried a valid bearer token; anonymous reads omit the field entirely.
type PostView struct {
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Author        AuthorView `json:"author"`
	LikedByViewer *bool      `json:"liked_by_user,omitempty"`
	ID            int64      `json:"id"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
}

// CreatePostRequest is the input for creating a new post.
// AuthorID is always derived from the authenticated user, never the body.
type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
	AuthorID int64   `json:"-"`
}

// CreatePostResponse is returned after a successful create.
type CreatePostResponse struct {
	PostID int64 `json:"postId"`
}

// UpdatePostRequest is the input for editing a post. Only title and
// content are mutable via this path; image_url and author are not.
type UpdatePostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	PostID      int64  `json:"-"`
	RequesterID int64  `json:"-"`
}
