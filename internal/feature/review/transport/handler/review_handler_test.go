package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamereview_backend/internal/feature/auth/transport/middleware"
	"gamereview_backend/internal/feature/review/domain/entity"
	"gamereview_backend/internal/feature/review/usecase"
)

// mockReviewUsecase is a mock implementation of the ReviewUsecase interface.
type mockReviewUsecase struct {
	CreateFunc  func(ctx context.Context, authorID uint, in usecase.NewReview) (*entity.ReviewWithAuthor, error)
	ListOwnFunc func(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error)
	ListAllFunc func(ctx context.Context) ([]entity.ReviewWithAuthor, error)
	GetByIDFunc func(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error)
	UpdateFunc  func(ctx context.Context, callerID, id uint, in usecase.ReviewUpdate) (*entity.ReviewWithAuthor, error)
	DeleteFunc  func(ctx context.Context, callerID, id uint) error
}

func (m *mockReviewUsecase) Create(ctx context.Context, authorID uint, in usecase.NewReview) (*entity.ReviewWithAuthor, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, authorID, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewUsecase) ListOwn(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error) {
	if m.ListOwnFunc != nil {
		return m.ListOwnFunc(ctx, authorID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewUsecase) ListAll(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewUsecase) GetByID(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewUsecase) Update(ctx context.Context, callerID, id uint, in usecase.ReviewUpdate) (*entity.ReviewWithAuthor, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, callerID, id, in)
	}
	return nil, errors.New("not implemented")
}

func (m *mockReviewUsecase) Delete(ctx context.Context, callerID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, callerID, id)
	}
	return errors.New("not implemented")
}

// asUser injects the identity key the auth gate would have set.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func sampleReview() *entity.ReviewWithAuthor {
	return &entity.ReviewWithAuthor{
		Review: entity.Review{
			ID:       10,
			Title:    "A stellar roguelike",
			Content:  "long enough review content",
			GameName: "Hades II",
			Rating:   9,
			AuthorID: 1,
		},
		Author: entity.AuthorSummary{ID: 1, Name: "Ann", Email: "ann@example.com"},
	}
}

func newReviewRouter(userID uint, mock *mockReviewUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReviewHandler(mock)
	g := r.Group("/api", asUser(userID))
	g.POST("/reviews", h.Create)
	g.GET("/reviews", h.ListOwn)
	g.GET("/reviews/all", h.ListAll)
	g.GET("/reviews/:id", h.GetByID)
	g.PUT("/reviews/:id", h.Update)
	g.DELETE("/reviews/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReviewHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := &mockReviewUsecase{
			CreateFunc: func(ctx context.Context, authorID uint, in usecase.NewReview) (*entity.ReviewWithAuthor, error) {
				assert.Equal(t, uint(1), authorID)
				return sampleReview(), nil
			},
		}
		r := newReviewRouter(1, mock)

		w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{
			"title":    "A stellar roguelike",
			"content":  "long enough review content",
			"gameName": "Hades II",
			"rating":   9,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Review created successfully")
		assert.Contains(t, w.Body.String(), `"author"`)
	})

	t.Run("out-of-range rating is collected by validation", func(t *testing.T) {
		r := newReviewRouter(1, &mockReviewUsecase{})

		w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{
			"title":    "A stellar roguelike",
			"content":  "long enough review content",
			"gameName": "Hades II",
			"rating":   11,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rating must be a number between 1 and 10")
	})

	t.Run("missing fields are all reported at once", func(t *testing.T) {
		r := newReviewRouter(1, &mockReviewUsecase{})

		w := doJSON(r, http.MethodPost, "/api/reviews", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Errors, 4) // title, content, game name, rating
	})
}

func TestReviewHandler_ListOwn(t *testing.T) {
	mock := &mockReviewUsecase{
		ListOwnFunc: func(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error) {
			assert.Equal(t, uint(1), authorID)
			return []entity.ReviewWithAuthor{*sampleReview()}, nil
		},
	}
	r := newReviewRouter(1, mock)

	w := doJSON(r, http.MethodGet, "/api/reviews", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["count"])
}

func TestReviewHandler_ListAll(t *testing.T) {
	mock := &mockReviewUsecase{
		ListAllFunc: func(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
			return []entity.ReviewWithAuthor{*sampleReview()}, nil
		},
	}
	r := newReviewRouter(7, mock)

	w := doJSON(r, http.MethodGet, "/api/reviews/all", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// The feed tells the client who it is, so ownership can be rendered.
	assert.Equal(t, float64(7), body["currentUserId"])
}

func TestReviewHandler_GetByID(t *testing.T) {
	mock := &mockReviewUsecase{
		GetByIDFunc: func(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error) {
			if id == 10 {
				return sampleReview(), nil
			}
			return nil, usecase.ErrReviewNotFound
		},
	}
	r := newReviewRouter(2, mock) // not the author; reads are unrestricted

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"found", "/api/reviews/10", http.StatusOK},
		{"not found", "/api/reviews/9999", http.StatusNotFound},
		{"non-numeric id", "/api/reviews/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestReviewHandler_Update(t *testing.T) {
	t.Run("author updates a single field", func(t *testing.T) {
		mock := &mockReviewUsecase{
			UpdateFunc: func(ctx context.Context, callerID, id uint, in usecase.ReviewUpdate) (*entity.ReviewWithAuthor, error) {
				require.NotNil(t, in.Rating)
				assert.Equal(t, 6.5, *in.Rating)
				assert.Nil(t, in.Title)
				return sampleReview(), nil
			},
		}
		r := newReviewRouter(1, mock)

		w := doJSON(r, http.MethodPut, "/api/reviews/10", gin.H{"rating": 6.5})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Review updated successfully")
	})

	t.Run("non-author gets a 403", func(t *testing.T) {
		mock := &mockReviewUsecase{
			UpdateFunc: func(ctx context.Context, callerID, id uint, in usecase.ReviewUpdate) (*entity.ReviewWithAuthor, error) {
				return nil, usecase.ErrNotReviewAuthor
			},
		}
		r := newReviewRouter(2, mock)

		w := doJSON(r, http.MethodPut, "/api/reviews/10", gin.H{"title": "Hijacked title"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You do not have permission to update this review")
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"success", nil, http.StatusOK, "Review deleted successfully"},
		{"not the author", usecase.ErrNotReviewAuthor, http.StatusForbidden, "You do not have permission to delete this review"},
		{"missing review", usecase.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockReviewUsecase{
				DeleteFunc: func(ctx context.Context, callerID, id uint) error {
					return tt.err
				},
			}
			r := newReviewRouter(1, mock)

			w := doJSON(r, http.MethodDelete, "/api/reviews/10", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}
