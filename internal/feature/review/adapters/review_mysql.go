// Package adapters provides repository implementations for the review feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gamereview_backend/internal/feature/review/domain/entity"
	"gamereview_backend/internal/feature/review/usecase"
)

// reviewMySQL is a MySQL implementation of the ReviewRepository interface.
type reviewMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure reviewMySQL implements ReviewRepository.
var _ usecase.ReviewRepository = (*reviewMySQL)(nil)

// NewReviewMySQL creates a new reviewMySQL instance.
func NewReviewMySQL(db *gorm.DB) *reviewMySQL {
	return &reviewMySQL{db: db}
}

// reviewAuthorRow is the flat scan target for the reviews-users join.
type reviewAuthorRow struct {
	ID          uint
	Title       string
	Content     string
	GameName    string
	Rating      float64
	Platform    string
	Genre       string
	AuthorID    uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AuthorName  string
	AuthorEmail string
}

func (r reviewAuthorRow) toEntity() entity.ReviewWithAuthor {
	return entity.ReviewWithAuthor{
		Review: entity.Review{
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Content,
			GameName:  r.GameName,
			Rating:    r.Rating,
			Platform:  r.Platform,
			Genre:     r.Genre,
			AuthorID:  r.AuthorID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		Author: entity.AuthorSummary{
			ID:    r.AuthorID,
			Name:  r.AuthorName,
			Email: r.AuthorEmail,
		},
	}
}

// joined builds the base query selecting reviews with author name and email.
func (r *reviewMySQL) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.name AS author_name, users.email AS author_email").
		Joins("JOIN users ON users.id = reviews.author_id")
}

// Create persists a new review.
func (r *reviewMySQL) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// FindByID retrieves a review with its author summary.
func (r *reviewMySQL) FindByID(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error) {
	var row reviewAuthorRow
	err := r.joined(ctx).Where("reviews.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrReviewNotFound
		}
		return nil, err
	}
	out := row.toEntity()
	return &out, nil
}

// ListByAuthor returns the author's reviews, newest first.
func (r *reviewMySQL) ListByAuthor(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error) {
	var rows []reviewAuthorRow
	err := r.joined(ctx).
		Where("reviews.author_id = ?", authorID).
		Order("reviews.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

// ListAll returns every review, newest first.
func (r *reviewMySQL) ListAll(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
	var rows []reviewAuthorRow
	err := r.joined(ctx).
		Order("reviews.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

// Update persists changes to an existing review.
func (r *reviewMySQL) Update(ctx context.Context, review *entity.Review) error {
	result := r.db.WithContext(ctx).Save(review)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrReviewNotFound
	}
	return nil
}

// Delete removes a review by ID.
func (r *reviewMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrReviewNotFound
	}
	return nil
}

func toEntities(rows []reviewAuthorRow) []entity.ReviewWithAuthor {
	out := make([]entity.ReviewWithAuthor, len(rows))
	for i, row := range rows {
		out[i] = row.toEntity()
	}
	return out
}
