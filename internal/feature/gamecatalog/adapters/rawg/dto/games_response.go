// Package dto defines the wire format of RAWG API responses.
package dto

// NamedRef is RAWG's {"name": ...} object used for genres, developers
// and publishers.
type NamedRef struct {
	Name string `json:"name"`
}

// PlatformRef wraps RAWG's nested platform object.
type PlatformRef struct {
	Platform NamedRef `json:"platform"`
}

// GameItem is one entry of a RAWG games list.
type GameItem struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Released        string        `json:"released"`
	Rating          float64       `json:"rating"`
	BackgroundImage string        `json:"background_image"`
	Platforms       []PlatformRef `json:"platforms"`
	Genres          []NamedRef    `json:"genres"`
}

// GamesListResponse is the body of RAWG's /games list endpoint.
type GamesListResponse struct {
	Count   int        `json:"count"`
	Results []GameItem `json:"results"`
}

// GameDetailResponse is the body of RAWG's /games/{id} endpoint.
type GameDetailResponse struct {
	GameItem
	DescriptionRaw string     `json:"description_raw"`
	Developers     []NamedRef `json:"developers"`
	Publishers     []NamedRef `json:"publishers"`
	Metacritic     int        `json:"metacritic"`
	Website        string     `json:"website"`
}
