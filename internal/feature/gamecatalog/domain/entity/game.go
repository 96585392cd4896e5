// Package entity defines the domain entities for the game catalog feature.
package entity

// Game is a catalog entry as shown in lists.
type Game struct {
	ID              int
	Name            string
	Released        string
	Rating          float64
	BackgroundImage string
	Platforms       []string
	Genres          []string
}

// GameDetail is the full catalog record for a single game.
type GameDetail struct {
	Game
	Description string
	Developers  []string
	Publishers  []string
	Metacritic  int
	Website     string
}

// GameList is a page of catalog entries with the upstream total count.
type GameList struct {
	Count int
	Games []Game
}
