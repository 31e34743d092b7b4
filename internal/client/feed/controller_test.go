package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedJSON(liked bool, likes int) []FeedPost {
	return []FeedPost{makePost(1, likes, boolPtr(liked))}
}

func TestController_RefreshReplacesState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode(feedJSON(true, 7))
	}))
	defer server.Close()

	ctrl := NewController(NewClient(server.URL, "token", nil))

	err := ctrl.Refresh(context.Background(), "golang")
	require.NoError(t, err)

	state := ctrl.State()
	require.Len(t, state.Posts, 1)
	assert.True(t, state.Liked[1])
	assert.Equal(t, 7, state.Posts[0].LikesCount)
	assert.Equal(t, "golang", state.SearchTerm)
	assert.False(t, state.Loading)
}

func TestController_RefreshFailureLeavesStateUntouched(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "InternalError", "message": "boom"})
			return
		}
		json.NewEncoder(w).Encode(feedJSON(false, 3))
	}))
	defer server.Close()

	ctrl := NewController(NewClient(server.URL, "token", nil))
	require.NoError(t, ctrl.Refresh(context.Background(), ""))

	healthy.Store(false)
	err := ctrl.Refresh(context.Background(), "other")
	require.Error(t, err)
	assert.False(t, IsRetryable(err))

	state := ctrl.State()
	require.Len(t, state.Posts, 1)
	assert.Equal(t, 3, state.Posts[0].LikesCount)
	assert.Equal(t, "", state.SearchTerm)
	assert.False(t, state.Loading)
}

func TestController_ToggleLikeConfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts":
			json.NewEncoder(w).Encode(feedJSON(false, 0))
		case "/api/posts/1/like":
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Post liked", "liked": true})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	ctrl := NewController(NewClient(server.URL, "token", nil))
	require.NoError(t, ctrl.Refresh(context.Background(), ""))

	err := ctrl.ToggleLike(context.Background(), 1)
	require.NoError(t, err)

	state := ctrl.State()
	assert.True(t, state.Liked[1])
	assert.Equal(t, 1, state.Posts[0].LikesCount)
}

func TestController_ToggleLikeFailureRevertsExactly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts":
			json.NewEncoder(w).Encode(feedJSON(false, 5))
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "NotFound", "message": "Post not found"})
		}
	}))
	defer server.Close()

	ctrl := NewController(NewClient(server.URL, "token", nil))
	require.NoError(t, ctrl.Refresh(context.Background(), ""))

	err := ctrl.ToggleLike(context.Background(), 1)
	require.Error(t, err)

	state := ctrl.State()
	assert.False(t, state.Liked[1])
	assert.Equal(t, 5, state.Posts[0].LikesCount)
}

func TestController_UnauthorizedTriggersSignOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized", "message": "Invalid or expired token"})
	}))
	defer server.Close()

	var signedOut atomic.Bool
	ctrl := NewController(NewClient(server.URL, "stale-token", func() {
		signedOut.Store(true)
	}))

	err := ctrl.ToggleLike(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, signedOut.Load())
	assert.False(t, IsRetryable(err))
}

func TestController_ToggleFavoriteActivates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts":
			json.NewEncoder(w).Encode(feedJSON(false, 0))
		case "/api/posts/1/favorite":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Post favorited", "favorited": true})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	ctrl := NewController(NewClient(server.URL, "token", nil))
	require.NoError(t, ctrl.Refresh(context.Background(), ""))

	require.NoError(t, ctrl.ToggleFavorite(context.Background(), 1))
	assert.True(t, ctrl.State().Favorited[1])
}
