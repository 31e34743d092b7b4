package feed

import (
	"context"
	"sync"
)

// Controller owns the client-side feed state. All transitions go through
// the reducer; the mutex makes concurrent toggles on different posts safe.
// No ordering is guaranteed between a Refresh and a concurrent toggle: a
// refresh that lands after an optimistic flip but before its confirmation
// overwrites the flip with server truth.
type Controller struct {
	mu     sync.Mutex
	state  State
	client *Client
}

// NewController creates a feed controller around an API client.
func NewController(client *Client) *Controller {
	return &Controller{
		state:  NewState(),
		client: client,
	}
}

// State returns a snapshot of the current feed state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh fetches the feed for the given search term and replaces local
// state with server truth. A failed fetch leaves prior state untouched
// and returns the error.
func (c *Controller) Refresh(ctx context.Context, term string) error {
	c.mu.Lock()
	c.state.Loading = true
	c.mu.Unlock()

	posts, err := c.client.FetchFeed(ctx, term)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if err != nil {
		return err
	}
	c.state = Reduce(c.state, Loaded{Posts: posts, SearchTerm: term})
	return nil
}

// ToggleLike optimistically flips the like state and count, then issues
// the network call. On failure the flip is reverted exactly.
func (c *Controller) ToggleLike(ctx context.Context, postID int64) error {
	return c.toggle(ctx, postID, ToggleLike, c.client.ToggleLike)
}

// ToggleFavorite optimistically flips the favorite state, then issues the
// network call. On failure the flip is reverted exactly.
func (c *Controller) ToggleFavorite(ctx context.Context, postID int64) error {
	return c.toggle(ctx, postID, ToggleFavorite, c.client.ToggleFavorite)
}

func (c *Controller) toggle(ctx context.Context, postID int64, kind ToggleKind,
	call func(context.Context, int64) (bool, error)) error {

	c.mu.Lock()
	c.state = Reduce(c.state, OptimisticToggle{PostID: postID, Kind: kind})
	c.mu.Unlock()

	active, err := call(ctx, postID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = Reduce(c.state, ToggleReverted{PostID: postID, Kind: kind})
		return err
	}
	c.state = Reduce(c.state, ToggleConfirmed{PostID: postID, Kind: kind, Active: active})
	return nil
}
