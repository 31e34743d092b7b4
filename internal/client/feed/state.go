package feed

import "time"

// ToggleKind names which boolean a toggle event operates on.
type ToggleKind string

const (
	ToggleLike     ToggleKind = "like"
	ToggleFavorite ToggleKind = "favorite"
)

// FeedPost is the client view-model of a post, decoded straight from the
// feed endpoint.
type FeedPost struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ImageURL      *string   `json:"image_url,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	LikedByUser   *bool     `json:"liked_by_user,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Author        struct {
		ID                int64   `json:"id"`
		Username          string  `json:"username"`
		ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	} `json:"author"`
}

// State is the feed controller's view of the world. Posts keep server
// order; Liked and Favorited are the per-post local booleans the UI
// renders from.
type State struct {
	Posts      []FeedPost
	Liked      map[int64]bool
	Favorited  map[int64]bool
	Loading    bool
	SearchTerm string
}

// NewState returns an empty state with initialized maps.
func NewState() State {
	return State{
		Liked:     make(map[int64]bool),
		Favorited: make(map[int64]bool),
	}
}

// Event is a state transition input for Reduce.
type Event interface{ isEvent() }

// Loaded replaces the feed with server truth. The liked map is rebuilt
// from the per-post liked_by_user flag; the favorited map is rebuilt from
// scratch because the feed does not report it, so pending favorite state
// survives only until the next load.
type Loaded struct {
	Posts      []FeedPost
	SearchTerm string
}

// OptimisticToggle flips a boolean and the displayed count before the
// network call resolves.
type OptimisticToggle struct {
	PostID int64
	Kind   ToggleKind
}

// ToggleConfirmed reconciles local state with the server's post-toggle
// answer. When the optimistic flip already matches, this is a no-op.
type ToggleConfirmed struct {
	PostID int64
	Kind   ToggleKind
	Active bool
}

// ToggleReverted undoes an optimistic flip exactly, for when the network
// call failed.
type ToggleReverted struct {
	PostID int64
	Kind   ToggleKind
}

func (Loaded) isEvent()           {}
func (OptimisticToggle) isEvent() {}
func (ToggleConfirmed) isEvent()  {}
func (ToggleReverted) isEvent()   {}

// Reduce applies an event to a state and returns the next state. It is a
// pure function; the input state is not mutated.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case Loaded:
		next := State{
			Posts:      append([]FeedPost(nil), ev.Posts...),
			Liked:      make(map[int64]bool, len(ev.Posts)),
			Favorited:  make(map[int64]bool),
			SearchTerm: ev.SearchTerm,
		}
		for _, p := range ev.Posts {
			if p.LikedByUser != nil && *p.LikedByUser {
				next.Liked[p.ID] = true
			}
		}
		return next

	case OptimisticToggle:
		return applyFlip(s, ev.PostID, ev.Kind)

	case ToggleReverted:
		return applyFlip(s, ev.PostID, ev.Kind)

	case ToggleConfirmed:
		if currentState(s, ev.PostID, ev.Kind) == ev.Active {
			return s
		}
		return applyFlip(s, ev.PostID, ev.Kind)

	default:
		return s
	}
}

func currentState(s State, postID int64, kind ToggleKind) bool {
	if kind == ToggleFavorite {
		return s.Favorited[postID]
	}
	return s.Liked[postID]
}

// applyFlip flips the boolean for (postID, kind) and, for likes, adjusts
// the displayed count on the matching post. Flipping twice restores the
// original state exactly.
func applyFlip(s State, postID int64, kind ToggleKind) State {
	next := s
	next.Posts = append([]FeedPost(nil), s.Posts...)

	if kind == ToggleFavorite {
		next.Favorited = copyMap(s.Favorited)
		next.Favorited[postID] = !s.Favorited[postID]
		next.Liked = copyMap(s.Liked)
		return next
	}

	next.Liked = copyMap(s.Liked)
	nowLiked := !s.Liked[postID]
	next.Liked[postID] = nowLiked
	next.Favorited = copyMap(s.Favorited)

	for i := range next.Posts {
		if next.Posts[i].ID == postID {
			if nowLiked {
				next.Posts[i].LikesCount++
			} else {
				next.Posts[i].LikesCount--
			}
			break
		}
	}
	return next
}

func copyMap(m map[int64]bool) map[int64]bool {
	out := make(map[int64]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
