package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockPostRepository) GetView(ctx context.Context, id int64) (*PostView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PostView), args.Error(1)
}

func (m *mockPostRepository) UpdateContent(ctx context.Context, id int64, title, content string) error {
	args := m.Called(ctx, id, title, content)
	return args.Error(0)
}

func (m *mockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPostService_CreatePost(t *testing.T) {
	t.Run("creates post with valid input", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
			return p.AuthorID == 7 && p.Title == "Hello" && p.Content == "World"
		})).Return(int64(1), nil)

		resp, err := service.CreatePost(context.Background(), CreatePostRequest{
			AuthorID: 7,
			Title:    "Hello",
			Content:  "World",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.PostID)
		repo.AssertExpectations(t)
	})

	t.Run("trims surrounding whitespace before persisting", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
			return p.Title == "Hello" && p.Content == "World"
		})).Return(int64(2), nil)

		_, err := service.CreatePost(context.Background(), CreatePostRequest{
			AuthorID: 7,
			Title:    "  Hello  ",
			Content:  "\tWorld\n",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty title without touching the repository", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		_, err := service.CreatePost(context.Background(), CreatePostRequest{
			AuthorID: 7,
			Title:    "   ",
			Content:  "World",
		})

		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		_, err := service.CreatePost(context.Background(), CreatePostRequest{
			AuthorID: 7,
			Title:    "Hello",
			Content:  "",
		})

		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_GetPost(t *testing.T) {
	t.Run("returns view with zero counts for a fresh post", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		view := &PostView{
			ID:      1,
			Title:   "Hello",
			Content: "World",
			Author:  AuthorView{ID: 7, Username: "alice"},
		}
		repo.On("GetView", mock.Anything, int64(1)).Return(view, nil)

		got, err := service.GetPost(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0, got.LikesCount)
		assert.Equal(t, 0, got.CommentsCount)
		assert.Nil(t, got.LikedByViewer)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetView", mock.Anything, int64(99)).Return(nil, ErrPostNotFound)

		_, err := service.GetPost(context.Background(), 99)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	owned := &Post{ID: 1, AuthorID: 7, Title: "old", Content: "old", CreatedAt: time.Now()}

	t.Run("owner can update title and content", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)
		repo.On("UpdateContent", mock.Anything, int64(1), "new title", "new content").Return(nil)

		err := service.UpdatePost(context.Background(), UpdatePostRequest{
			PostID:      1,
			RequesterID: 7,
			Title:       "new title",
			Content:     "new content",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected and nothing is written", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)

		err := service.UpdatePost(context.Background(), UpdatePostRequest{
			PostID:      1,
			RequesterID: 8,
			Title:       "new title",
			Content:     "new content",
		})

		assert.ErrorIs(t, err, ErrNotPostOwner)
		repo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetByID", mock.Anything, int64(99)).Return(nil, ErrPostNotFound)

		err := service.UpdatePost(context.Background(), UpdatePostRequest{
			PostID:      99,
			RequesterID: 7,
			Title:       "t",
			Content:     "c",
		})

		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("validation failure short-circuits before the ownership check", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		err := service.UpdatePost(context.Background(), UpdatePostRequest{
			PostID:      1,
			RequesterID: 7,
			Title:       "",
			Content:     "c",
		})

		assert.True(t, IsValidationError(err))
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	owned := &Post{ID: 1, AuthorID: 7}

	t.Run("owner can delete", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)
		repo.On("Delete", mock.Anything, int64(1)).Return(nil)

		err := service.DeletePost(context.Background(), 1, 7)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("non-owner gets ErrNotPostOwner", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)

		err := service.DeletePost(context.Background(), 1, 9)
		assert.ErrorIs(t, err, ErrNotPostOwner)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("zero rows affected surfaces as storage inconsistency", func(t *testing.T) {
		repo := new(mockPostRepository)
		service := NewService(repo, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)
		repo.On("Delete", mock.Anything, int64(1)).Return(ErrStorageInconsistency)

		err := service.DeletePost(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrStorageInconsistency)
	})
}
