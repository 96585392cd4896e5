package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"gamereview_backend/internal/feature/gamecatalog/domain/entity"
	"gamereview_backend/internal/feature/gamecatalog/usecase"
)

// mockCatalogUsecase is a mock implementation of the CatalogUsecase interface.
type mockCatalogUsecase struct {
	PopularFunc  func(ctx context.Context, page, pageSize int) (*entity.GameList, error)
	SearchFunc   func(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error)
	UpcomingFunc func(ctx context.Context, page, pageSize int) (*entity.GameList, error)
	DetailsFunc  func(ctx context.Context, id int) (*entity.GameDetail, error)
}

func (m *mockCatalogUsecase) Popular(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	if m.PopularFunc != nil {
		return m.PopularFunc(ctx, page, pageSize)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogUsecase) Search(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page, pageSize)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogUsecase) Upcoming(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	if m.UpcomingFunc != nil {
		return m.UpcomingFunc(ctx, page, pageSize)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCatalogUsecase) Details(ctx context.Context, id int) (*entity.GameDetail, error) {
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func newGamesRouter(mock *mockCatalogUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGamesHandler(mock)
	r.GET("/api/games/popular", h.Popular)
	r.GET("/api/games/search", h.Search)
	r.GET("/api/games/upcoming", h.Upcoming)
	r.GET("/api/games/:id", h.Details)
	return r
}

func sampleList() *entity.GameList {
	return &entity.GameList{
		Count: 1,
		Games: []entity.Game{{ID: 1, Name: "Hades II", Rating: 4.6}},
	}
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGamesHandler_Popular(t *testing.T) {
	t.Run("applies default paging", func(t *testing.T) {
		var gotPage, gotSize int
		mock := &mockCatalogUsecase{
			PopularFunc: func(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
				gotPage, gotSize = page, pageSize
				return sampleList(), nil
			},
		}
		w := get(newGamesRouter(mock), "/api/games/popular")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, defaultPage, gotPage)
		assert.Equal(t, defaultPageSize, gotSize)
		assert.Contains(t, w.Body.String(), "Hades II")
	})

	t.Run("clamps page_size to the upstream cap", func(t *testing.T) {
		var gotSize int
		mock := &mockCatalogUsecase{
			PopularFunc: func(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
				gotSize = pageSize
				return sampleList(), nil
			},
		}
		get(newGamesRouter(mock), "/api/games/popular?page_size=100")

		assert.Equal(t, maxPageSize, gotSize)
	})

	t.Run("upstream failure is a bad gateway", func(t *testing.T) {
		mock := &mockCatalogUsecase{
			PopularFunc: func(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
				return nil, usecase.ErrUpstream
			},
		}
		w := get(newGamesRouter(mock), "/api/games/popular")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestGamesHandler_Search(t *testing.T) {
	t.Run("forwards the query", func(t *testing.T) {
		var gotQuery string
		mock := &mockCatalogUsecase{
			SearchFunc: func(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error) {
				gotQuery = query
				return sampleList(), nil
			},
		}
		w := get(newGamesRouter(mock), "/api/games/search?query=hades")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hades", gotQuery)
	})

	t.Run("missing query is a 400", func(t *testing.T) {
		w := get(newGamesRouter(&mockCatalogUsecase{}), "/api/games/search")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "search query is required")
	})
}

func TestGamesHandler_Details(t *testing.T) {
	mock := &mockCatalogUsecase{
		DetailsFunc: func(ctx context.Context, id int) (*entity.GameDetail, error) {
			if id == 42 {
				return &entity.GameDetail{
					Game:        entity.Game{ID: 42, Name: "Hades II"},
					Description: "A roguelike dungeon crawler.",
					Metacritic:  93,
				}, nil
			}
			return nil, usecase.ErrGameNotFound
		},
	}
	r := newGamesRouter(mock)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"found", "/api/games/42", http.StatusOK},
		{"not found", "/api/games/9999", http.StatusNotFound},
		{"non-numeric id", "/api/games/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
