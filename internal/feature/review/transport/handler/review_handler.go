// Package handler provides the HTTP handlers for the review feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamereview_backend/internal/feature/auth/transport/middleware"
	"gamereview_backend/internal/feature/review/domain/entity"
	"gamereview_backend/internal/feature/review/transport/http/dto"
	"gamereview_backend/internal/feature/review/usecase"
	"gamereview_backend/internal/shared/response"
	"gamereview_backend/internal/shared/validation"
)

// ReviewUsecase defines the review operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReviewUsecase interface {
	Create(ctx context.Context, authorID uint, in usecase.NewReview) (*entity.ReviewWithAuthor, error)
	ListOwn(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error)
	ListAll(ctx context.Context) ([]entity.ReviewWithAuthor, error)
	GetByID(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error)
	Update(ctx context.Context, callerID, id uint, in usecase.ReviewUpdate) (*entity.ReviewWithAuthor, error)
	Delete(ctx context.Context, callerID, id uint) error
}

// ReviewHandler handles the HTTP requests for review operations.
type ReviewHandler struct {
	reviews ReviewUsecase
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(reviews ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}

	var req dto.CreateReviewReq
	// Tag violations fall through so every broken rule is reported below.
	if err := c.ShouldBindJSON(&req); err != nil && !validation.IsTagViolation(err) {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.Review(req.Title, req.Content, req.GameName, req.Rating, req.Platform, req.Genre); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	in := usecase.NewReview{
		Title:    req.Title,
		Content:  req.Content,
		GameName: req.GameName,
		Rating:   *req.Rating,
	}
	if req.Platform != nil {
		in.Platform = *req.Platform
	}
	if req.Genre != nil {
		in.Genre = *req.Genre
	}

	review, err := h.reviews.Create(c.Request.Context(), userID, in)
	if err != nil {
		slog.Error("create review failed", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, dto.ReviewRes{
		Success: true,
		Message: "Review created successfully",
		Review:  dto.NewReviewView(review),
	})
}

// ListOwn handles GET /api/reviews: the caller's reviews, newest first.
func (h *ReviewHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}

	reviews, err := h.reviews.ListOwn(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list own reviews failed", "error", err, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewListRes{
		Success: true,
		Count:   len(reviews),
		Reviews: toViews(reviews),
	})
}

// ListAll handles GET /api/reviews/all: the shared feed, newest first.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	reviews, err := h.reviews.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list all reviews failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewListRes{
		Success:       true,
		Count:         len(reviews),
		Reviews:       toViews(reviews),
		CurrentUserID: userID,
	})
}

// GetByID handles GET /api/reviews/:id. Any authenticated user may read any
// review, matching the shared feed.
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}

	review, err := h.reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReviewNotFound) {
			response.Error(c, http.StatusNotFound, "Review not found")
			return
		}
		slog.Error("get review failed", "error", err, "review_id", id)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch review")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewRes{Success: true, Review: dto.NewReviewView(review)})
}

// Update handles PUT /api/reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil && !validation.IsTagViolation(err) {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validation.ReviewUpdate(req.Title, req.Content, req.GameName, req.Rating, req.Platform, req.Genre); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	review, err := h.reviews.Update(c.Request.Context(), userID, id, usecase.ReviewUpdate{
		Title:    req.Title,
		Content:  req.Content,
		GameName: req.GameName,
		Rating:   req.Rating,
		Platform: req.Platform,
		Genre:    req.Genre,
	})
	if err != nil {
		h.writeMutationError(c, err, id, "update")
		return
	}

	c.JSON(http.StatusOK, dto.ReviewRes{
		Success: true,
		Message: "Review updated successfully",
		Review:  dto.NewReviewView(review),
	})
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized. Please login to access this resource.")
		return
	}
	id, ok := reviewID(c)
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeMutationError(c, err, id, "delete")
		return
	}

	c.JSON(http.StatusOK, response.Envelope{Success: true, Message: "Review deleted successfully"})
}

// writeMutationError maps usecase errors from update/delete to responses.
func (h *ReviewHandler) writeMutationError(c *gin.Context, err error, id uint, op string) {
	switch {
	case errors.Is(err, usecase.ErrReviewNotFound):
		response.Error(c, http.StatusNotFound, "Review not found")
	case errors.Is(err, usecase.ErrNotReviewAuthor):
		response.Error(c, http.StatusForbidden, "You do not have permission to "+op+" this review")
	default:
		slog.Error("review mutation failed", "op", op, "error", err, "review_id", id)
		response.Error(c, http.StatusInternalServerError, "Failed to "+op+" review")
	}
}

// reviewID parses the :id path parameter, writing a 400 when it is not a
// positive integer.
func reviewID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid review ID")
		return 0, false
	}
	return uint(id), true
}

func toViews(reviews []entity.ReviewWithAuthor) []dto.ReviewView {
	out := make([]dto.ReviewView, len(reviews))
	for i := range reviews {
		out[i] = dto.NewReviewView(&reviews[i])
	}
	return out
}
