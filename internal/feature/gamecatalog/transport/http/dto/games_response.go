// Package dto defines data transfer objects for the game catalog feature's HTTP transport layer.
package dto

import "gamereview_backend/internal/feature/gamecatalog/domain/entity"

// GameView is one catalog entry as exposed to the frontend. Field names
// mirror what the frontend already consumes (snake_case image URL).
type GameView struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Released        string   `json:"released"`
	Rating          float64  `json:"rating"`
	BackgroundImage string   `json:"background_image"`
	Platforms       []string `json:"platforms"`
	Genres          []string `json:"genres"`
}

// GameDetailView is the full catalog record for a single game.
type GameDetailView struct {
	GameView
	Description string   `json:"description"`
	Developers  []string `json:"developers"`
	Publishers  []string `json:"publishers"`
	Metacritic  int      `json:"metacritic"`
	Website     string   `json:"website"`
}

// GamesListRes is the response carrying a page of catalog entries.
type GamesListRes struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Games   []GameView `json:"games"`
}

// GameDetailRes is the response carrying one catalog record.
type GameDetailRes struct {
	Success bool           `json:"success"`
	Game    GameDetailView `json:"game"`
}

// NewGameView builds the outward projection of a catalog entry.
func NewGameView(g entity.Game) GameView {
	return GameView{
		ID:              g.ID,
		Name:            g.Name,
		Released:        g.Released,
		Rating:          g.Rating,
		BackgroundImage: g.BackgroundImage,
		Platforms:       g.Platforms,
		Genres:          g.Genres,
	}
}

// NewGameDetailView builds the outward projection of a full catalog record.
func NewGameDetailView(g *entity.GameDetail) GameDetailView {
	return GameDetailView{
		GameView:    NewGameView(g.Game),
		Description: g.Description,
		Developers:  g.Developers,
		Publishers:  g.Publishers,
		Metacritic:  g.Metacritic,
		Website:     g.Website,
	}
}
