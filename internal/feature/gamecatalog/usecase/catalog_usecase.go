package usecase

import (
	"context"

	"gamereview_backend/internal/feature/gamecatalog/domain/entity"
)

// CatalogRepository abstracts the external game catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CatalogRepository interface {
	// Popular returns a page of highly rated recent games.
	Popular(ctx context.Context, page, pageSize int) (*entity.GameList, error)

	// Search returns a page of games matching the query.
	Search(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error)

	// Upcoming returns a page of games releasing within the next year.
	Upcoming(ctx context.Context, page, pageSize int) (*entity.GameList, error)

	// Details returns the full record for one game.
	// It returns ErrGameNotFound when the catalog has no such ID.
	Details(ctx context.Context, id int) (*entity.GameDetail, error)
}

// CatalogUsecase provides read-through access to the game catalog.
type CatalogUsecase struct {
	catalog CatalogRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(catalog CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog}
}

// Popular returns a page of highly rated recent games.
func (u *CatalogUsecase) Popular(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	return u.catalog.Popular(ctx, page, pageSize)
}

// Search returns a page of games matching the query.
func (u *CatalogUsecase) Search(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error) {
	return u.catalog.Search(ctx, query, page, pageSize)
}

// Upcoming returns a page of games releasing within the next year.
func (u *CatalogUsecase) Upcoming(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	return u.catalog.Upcoming(ctx, page, pageSize)
}

// Details returns the full record for one game.
func (u *CatalogUsecase) Details(ctx context.Context, id int) (*entity.GameDetail, error) {
	return u.catalog.Details(ctx, id)
}
