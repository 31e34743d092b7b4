package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MarinaMenezess/devSocial/internal/core/posts"
)

type mockFeedRepository struct {
	mock.Mock
}

func (m *mockFeedRepository) Search(ctx context.Context, query string, viewerID *int64) ([]*posts.PostView, error) {
	args := m.Called(ctx, query, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostView), args.Error(1)
}

func (m *mockFeedRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*posts.PostView, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostView), args.Error(1)
}

func (m *mockFeedRepository) ListFavorites(ctx context.Context, userID int64) ([]*posts.PostView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostView), args.Error(1)
}

func TestFeedService_Search(t *testing.T) {
	t.Run("trims the query before delegating", func(t *testing.T) {
		repo := new(mockFeedRepository)
		service := NewService(repo, nil)

		repo.On("Search", mock.Anything, "hello", (*int64)(nil)).
			Return([]*posts.PostView{}, nil)

		_, err := service.Search(context.Background(), "  hello  ", nil)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("anonymous search carries no viewer", func(t *testing.T) {
		repo := new(mockFeedRepository)
		service := NewService(repo, nil)

		liked := true
		views := []*posts.PostView{
			{ID: 2, Title: "b"},
			{ID: 1, Title: "a", LikedByViewer: &liked},
		}
		repo.On("Search", mock.Anything, "", (*int64)(nil)).Return(views, nil)

		got, err := service.Search(context.Background(), "", nil)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("viewer id is forwarded for annotation", func(t *testing.T) {
		repo := new(mockFeedRepository)
		service := NewService(repo, nil)

		viewer := int64(7)
		repo.On("Search", mock.Anything, "go", &viewer).
			Return([]*posts.PostView{}, nil)

		_, err := service.Search(context.Background(), "go", &viewer)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		repo := new(mockFeedRepository)
		service := NewService(repo, nil)

		dbErr := errors.New("timeout")
		repo.On("Search", mock.Anything, "", (*int64)(nil)).Return(nil, dbErr)

		_, err := service.Search(context.Background(), "", nil)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestFeedService_Listings(t *testing.T) {
	t.Run("list by author delegates", func(t *testing.T) {
		repo := new(mockFeedRepository)
		service := NewService(repo, nil)

		repo.On("ListByAuthor", mock.Anything, int64(7)).
			Return([]*posts.PostView{{ID: 1}}, nil)

		got, err := service.ListByAuthor(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("list favorites delegates", func(t *testing.T) {
		repo := new(mockFeedRepository)
		service := NewService(repo, nil)

		repo.On("ListFavorites", mock.Anything, int64(7)).
			Return([]*posts.PostView{}, nil)

		got, err := service.ListFavorites(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
