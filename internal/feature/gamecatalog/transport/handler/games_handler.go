// Package handler provides the HTTP handlers for the game catalog feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamereview_backend/internal/feature/gamecatalog/domain/entity"
	"gamereview_backend/internal/feature/gamecatalog/transport/http/dto"
	"gamereview_backend/internal/feature/gamecatalog/usecase"
	"gamereview_backend/internal/shared/response"
)

// Default paging applied when the client omits the query parameters.
const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 40 // RAWG caps page_size at 40
)

// CatalogUsecase defines the catalog operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	Popular(ctx context.Context, page, pageSize int) (*entity.GameList, error)
	Search(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error)
	Upcoming(ctx context.Context, page, pageSize int) (*entity.GameList, error)
	Details(ctx context.Context, id int) (*entity.GameDetail, error)
}

// GamesHandler handles the HTTP requests proxying the game catalog.
type GamesHandler struct {
	catalog CatalogUsecase
}

// NewGamesHandler creates a new GamesHandler instance.
func NewGamesHandler(catalog CatalogUsecase) *GamesHandler {
	return &GamesHandler{catalog: catalog}
}

// Popular handles GET /api/games/popular.
func (h *GamesHandler) Popular(c *gin.Context) {
	page, pageSize := paging(c)
	list, err := h.catalog.Popular(c.Request.Context(), page, pageSize)
	if err != nil {
		h.writeCatalogError(c, err, "failed to fetch popular games")
		return
	}
	c.JSON(http.StatusOK, listRes(list))
}

// Search handles GET /api/games/search.
func (h *GamesHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error(c, http.StatusBadRequest, "search query is required")
		return
	}

	page, pageSize := paging(c)
	list, err := h.catalog.Search(c.Request.Context(), query, page, pageSize)
	if err != nil {
		h.writeCatalogError(c, err, "failed to search games")
		return
	}
	c.JSON(http.StatusOK, listRes(list))
}

// Upcoming handles GET /api/games/upcoming.
func (h *GamesHandler) Upcoming(c *gin.Context) {
	page, pageSize := paging(c)
	list, err := h.catalog.Upcoming(c.Request.Context(), page, pageSize)
	if err != nil {
		h.writeCatalogError(c, err, "failed to fetch upcoming games")
		return
	}
	c.JSON(http.StatusOK, listRes(list))
}

// Details handles GET /api/games/:id.
func (h *GamesHandler) Details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid game ID")
		return
	}

	game, err := h.catalog.Details(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrGameNotFound) {
			response.Error(c, http.StatusNotFound, "game not found")
			return
		}
		h.writeCatalogError(c, err, "failed to fetch game details")
		return
	}

	c.JSON(http.StatusOK, dto.GameDetailRes{Success: true, Game: dto.NewGameDetailView(game)})
}

// writeCatalogError distinguishes upstream failures (bad gateway) from
// everything else.
func (h *GamesHandler) writeCatalogError(c *gin.Context, err error, msg string) {
	slog.Error("catalog request failed", "error", err, "path", c.FullPath())
	if errors.Is(err, usecase.ErrUpstream) {
		response.Error(c, http.StatusBadGateway, msg)
		return
	}
	response.Error(c, http.StatusInternalServerError, msg)
}

// paging reads page/page_size query parameters with defaults and bounds.
func paging(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func listRes(list *entity.GameList) dto.GamesListRes {
	games := make([]dto.GameView, 0, len(list.Games))
	for _, g := range list.Games {
		games = append(games, dto.NewGameView(g))
	}
	return dto.GamesListRes{Success: true, Count: list.Count, Games: games}
}
