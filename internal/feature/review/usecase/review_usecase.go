package usecase

import (
	"context"
	"strings"

	"gamereview_backend/internal/feature/review/domain/entity"
)

// ReviewRepository abstracts the persistence layer for review entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review with its author summary.
	// It returns ErrReviewNotFound when no review matches.
	FindByID(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error)

	// ListByAuthor returns the author's reviews, newest first.
	ListByAuthor(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error)

	// ListAll returns every review system-wide, newest first.
	ListAll(ctx context.Context) ([]entity.ReviewWithAuthor, error)

	// Update persists changes to an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by ID.
	Delete(ctx context.Context, id uint) error
}

// NewReview carries the fields of a review to create. Field shape is
// validated at the transport layer.
type NewReview struct {
	Title    string
	Content  string
	GameName string
	Rating   float64
	Platform string
	Genre    string
}

// ReviewUpdate is a partial update; nil fields are left unchanged.
type ReviewUpdate struct {
	Title    *string
	Content  *string
	GameName *string
	Rating   *float64
	Platform *string
	Genre    *string
}

// reviewUsecase implements the review business logic.
type reviewUsecase struct {
	reviews ReviewRepository
}

// NewReviewUsecase creates a new reviewUsecase instance.
func NewReviewUsecase(reviews ReviewRepository) *reviewUsecase {
	return &reviewUsecase{reviews: reviews}
}

// Create persists a review owned by authorID and returns it with the author
// summary attached.
func (u *reviewUsecase) Create(ctx context.Context, authorID uint, in NewReview) (*entity.ReviewWithAuthor, error) {
	review := &entity.Review{
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		GameName: strings.TrimSpace(in.GameName),
		Rating:   in.Rating,
		Platform: strings.TrimSpace(in.Platform),
		Genre:    strings.TrimSpace(in.Genre),
		AuthorID: authorID,
	}
	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return u.reviews.FindByID(ctx, review.ID)
}

// ListOwn returns the caller's reviews, newest first.
func (u *reviewUsecase) ListOwn(ctx context.Context, authorID uint) ([]entity.ReviewWithAuthor, error) {
	return u.reviews.ListByAuthor(ctx, authorID)
}

// ListAll returns every review, newest first. Reads are unrestricted for
// authenticated users; the feed is shared.
func (u *reviewUsecase) ListAll(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
	return u.reviews.ListAll(ctx)
}

// GetByID returns a single review. Reading is deliberately not restricted to
// the author, matching the shared feed; mutation and deletion are.
func (u *reviewUsecase) GetByID(ctx context.Context, id uint) (*entity.ReviewWithAuthor, error) {
	return u.reviews.FindByID(ctx, id)
}

// Update applies only the supplied fields. Callers other than the author get
// ErrNotReviewAuthor regardless of the fields supplied.
func (u *reviewUsecase) Update(ctx context.Context, callerID, id uint, in ReviewUpdate) (*entity.ReviewWithAuthor, error) {
	existing, err := u.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != callerID {
		return nil, ErrNotReviewAuthor
	}

	review := existing.Review
	if in.Title != nil {
		review.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		review.Content = strings.TrimSpace(*in.Content)
	}
	if in.GameName != nil {
		review.GameName = strings.TrimSpace(*in.GameName)
	}
	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Platform != nil {
		review.Platform = strings.TrimSpace(*in.Platform)
	}
	if in.Genre != nil {
		review.Genre = strings.TrimSpace(*in.Genre)
	}

	if err := u.reviews.Update(ctx, &review); err != nil {
		return nil, err
	}
	return u.reviews.FindByID(ctx, id)
}

// Delete removes a review owned by callerID.
func (u *reviewUsecase) Delete(ctx context.Context, callerID, id uint) error {
	existing, err := u.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != callerID {
		return ErrNotReviewAuthor
	}
	return u.reviews.Delete(ctx, id)
}
