package interaction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MarinaMenezess/devSocial/internal/api/middleware"
	"github.com/MarinaMenezess/devSocial/internal/core/interactions"
	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

type mockInteractionService struct {
	mock.Mock
}

func (m *mockInteractionService) ToggleLike(ctx context.Context, postID, userID int64) (*interactions.ToggleResult, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.ToggleResult), args.Error(1)
}

func (m *mockInteractionService) ToggleFavorite(ctx context.Context, postID, userID int64) (*interactions.ToggleResult, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.ToggleResult), args.Error(1)
}

func toggleRequest(t *testing.T, action string, userID int64) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/posts/1/"+action, nil)
	req = req.WithContext(middleware.SetTestUserID(req.Context(), userID))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleToggleLike_Activate(t *testing.T) {
	service := new(mockInteractionService)
	handler := NewToggleHandler(service)

	service.On("ToggleLike", mock.Anything, int64(1), int64(42)).
		Return(&interactions.ToggleResult{Active: true}, nil)

	rec := httptest.NewRecorder()
	handler.HandleToggleLike(rec, toggleRequest(t, "like", 42))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp interactions.ToggleLikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, "Post liked", resp.Message)
}

func TestHandleToggleLike_Deactivate(t *testing.T) {
	service := new(mockInteractionService)
	handler := NewToggleHandler(service)

	service.On("ToggleLike", mock.Anything, int64(1), int64(42)).
		Return(&interactions.ToggleResult{Active: false}, nil)

	rec := httptest.NewRecorder()
	handler.HandleToggleLike(rec, toggleRequest(t, "like", 42))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp interactions.ToggleLikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
}

func TestHandleToggleLike_PostNotFound(t *testing.T) {
	service := new(mockInteractionService)
	handler := NewToggleHandler(service)

	service.On("ToggleLike", mock.Anything, int64(1), int64(42)).
		Return(nil, posts.ErrPostNotFound)

	rec := httptest.NewRecorder()
	handler.HandleToggleLike(rec, toggleRequest(t, "like", 42))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleToggleLike_Unauthenticated(t *testing.T) {
	handler := NewToggleHandler(new(mockInteractionService))

	req := httptest.NewRequest(http.MethodPost, "/api/posts/1/like", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.HandleToggleLike(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleToggleFavorite_ActivateReturns201(t *testing.T) {
	service := new(mockInteractionService)
	handler := NewToggleHandler(service)

	service.On("ToggleFavorite", mock.Anything, int64(1), int64(42)).
		Return(&interactions.ToggleResult{Active: true}, nil)

	rec := httptest.NewRecorder()
	handler.HandleToggleFavorite(rec, toggleRequest(t, "favorite", 42))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp interactions.ToggleFavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Favorited)
}

func TestHandleToggleFavorite_DeactivateReturns200(t *testing.T) {
	service := new(mockInteractionService)
	handler := NewToggleHandler(service)

	service.On("ToggleFavorite", mock.Anything, int64(1), int64(42)).
		Return(&interactions.ToggleResult{Active: false}, nil)

	rec := httptest.NewRecorder()
	handler.HandleToggleFavorite(rec, toggleRequest(t, "favorite", 42))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp interactions.ToggleFavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Favorited)
}
