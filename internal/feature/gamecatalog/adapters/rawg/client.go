package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gamereview_backend/internal/feature/gamecatalog/adapters/rawg/dto"
	"gamereview_backend/internal/feature/gamecatalog/domain/entity"
	"gamereview_backend/internal/feature/gamecatalog/usecase"
	"gamereview_backend/internal/shared/ratelimiter"
)

// popularWindow bounds the release dates considered for the popular list.
const popularWindow = "2023-01-01,2026-12-31"

// RAWGCatalog is a CatalogRepository implementation backed by the RAWG API.
type RAWGCatalog struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check to ensure RAWGCatalog implements CatalogRepository.
var _ usecase.CatalogRepository = (*RAWGCatalog)(nil)

// NewRAWGCatalog creates a new RAWGCatalog with the given config, HTTP client
// and outbound rate limiter.
func NewRAWGCatalog(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *RAWGCatalog {
	return &RAWGCatalog{cfg: cfg, client: client, limiter: limiter}
}

// Popular returns a page of highly rated recent games.
func (r *RAWGCatalog) Popular(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	q := r.baseQuery(page, pageSize)
	q.Set("ordering", "-rating")
	q.Set("dates", popularWindow)
	return r.fetchList(ctx, q)
}

// Search returns a page of games matching the query.
func (r *RAWGCatalog) Search(ctx context.Context, query string, page, pageSize int) (*entity.GameList, error) {
	q := r.baseQuery(page, pageSize)
	q.Set("search", query)
	return r.fetchList(ctx, q)
}

// Upcoming returns a page of games releasing within the next year.
func (r *RAWGCatalog) Upcoming(ctx context.Context, page, pageSize int) (*entity.GameList, error) {
	today := time.Now().UTC()
	q := r.baseQuery(page, pageSize)
	q.Set("ordering", "released")
	q.Set("dates", fmt.Sprintf("%s,%s",
		today.Format("2006-01-02"),
		today.AddDate(1, 0, 0).Format("2006-01-02")))
	return r.fetchList(ctx, q)
}

// Details returns the full record for one game.
func (r *RAWGCatalog) Details(ctx context.Context, id int) (*entity.GameDetail, error) {
	q := url.Values{}
	q.Set("key", r.cfg.RAWGAPIKey)
	u := fmt.Sprintf("%s/games/%d?%s", r.cfg.BaseURL, id, q.Encode())

	var body dto.GameDetailResponse
	if err := r.get(ctx, u, &body); err != nil {
		return nil, err
	}

	detail := &entity.GameDetail{
		Game:        toGame(body.GameItem),
		Description: body.DescriptionRaw,
		Developers:  names(body.Developers),
		Publishers:  names(body.Publishers),
		Metacritic:  body.Metacritic,
		Website:     body.Website,
	}
	return detail, nil
}

// baseQuery builds the query parameters shared by all list endpoints.
func (r *RAWGCatalog) baseQuery(page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("key", r.cfg.RAWGAPIKey)
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q
}

// fetchList performs a list request and converts the response.
func (r *RAWGCatalog) fetchList(ctx context.Context, q url.Values) (*entity.GameList, error) {
	u := fmt.Sprintf("%s/games?%s", r.cfg.BaseURL, q.Encode())

	var body dto.GamesListResponse
	if err := r.get(ctx, u, &body); err != nil {
		return nil, err
	}

	games := make([]entity.Game, 0, len(body.Results))
	for _, item := range body.Results {
		games = append(games, toGame(item))
	}
	return &entity.GameList{Count: body.Count, Games: games}, nil
}

// get performs a rate-limited GET and decodes the JSON body into out.
// A 404 maps to ErrGameNotFound; any other failure wraps ErrUpstream.
func (r *RAWGCatalog) get(ctx context.Context, u string, out any) error {
	r.limiter.WaitIfNeeded()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrUpstream, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return usecase.ErrGameNotFound
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("%w: rawg http %d", usecase.ErrUpstream, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", usecase.ErrUpstream, err)
	}
	return nil
}

func toGame(item dto.GameItem) entity.Game {
	platforms := make([]string, 0, len(item.Platforms))
	for _, p := range item.Platforms {
		platforms = append(platforms, p.Platform.Name)
	}
	return entity.Game{
		ID:              item.ID,
		Name:            item.Name,
		Released:        item.Released,
		Rating:          item.Rating,
		BackgroundImage: item.BackgroundImage,
		Platforms:       platforms,
		Genres:          names(item.Genres),
	}
}

func names(refs []dto.NamedRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Name)
	}
	return out
}
