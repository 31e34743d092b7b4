package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// defaultTimeout bounds every network call. A timed-out call is a
// retryable failure; a 4xx is a definitive rejection.
const defaultTimeout = 10 * time.Second

// APIError is a definitive server rejection with a status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsRetryable reports whether the failure was a timeout rather than a
// definitive server rejection.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// Client talks to the posts API. A 401 or 403 on any authenticated call
// means the session is gone; the client discards the token and fires the
// sign-out callback before returning the error.
type Client struct {
	baseURL   string
	token     string
	http      *http.Client
	onSignOut func()
}

// NewClient creates an API client. onSignOut may be nil.
func NewClient(baseURL, token string, onSignOut func()) *Client {
	return &Client{
		baseURL:   baseURL,
		token:     token,
		http:      &http.Client{Timeout: defaultTimeout},
		onSignOut: onSignOut,
	}
}

// FetchFeed retrieves the feed, optionally filtered by a search term.
func (c *Client) FetchFeed(ctx context.Context, term string) ([]FeedPost, error) {
	endpoint := c.baseURL + "/api/posts"
	if term != "" {
		endpoint += "?q=" + url.QueryEscape(term)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var posts []FeedPost
	if err := c.do(req, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips the like state of a post and returns the server's
// post-toggle state.
func (c *Client) ToggleLike(ctx context.Context, postID int64) (bool, error) {
	var resp struct {
		Liked bool `json:"liked"`
	}
	if err := c.toggle(ctx, postID, "like", &resp); err != nil {
		return false, err
	}
	return resp.Liked, nil
}

// ToggleFavorite flips the favorite state of a post and returns the
// server's post-toggle state.
func (c *Client) ToggleFavorite(ctx context.Context, postID int64) (bool, error) {
	var resp struct {
		Favorited bool `json:"favorited"`
	}
	if err := c.toggle(ctx, postID, "favorite", &resp); err != nil {
		return false, err
	}
	return resp.Favorited, nil
}

func (c *Client) toggle(ctx context.Context, postID int64, action string, out interface{}) error {
	endpoint := c.baseURL + "/api/posts/" + strconv.FormatInt(postID, 10) + "/" + action
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.signOut()
		return &APIError{Status: resp.StatusCode, Message: "session invalid"}
	}

	if resp.StatusCode >= 400 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: body.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) signOut() {
	c.token = ""
	if c.onSignOut != nil {
		c.onSignOut()
	}
}
