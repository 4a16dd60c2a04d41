// Package aic implements the tool pipeline for the Art Institute of
// Chicago public API: query normalization, the HTTP client, response
// rendering, and tool dispatch.
package aic

import "encoding/json"

// Envelope is the top-level structure returned by the AIC API. Data holds
// either a single record or a list of records; it stays raw until a
// renderer decodes it into the kind it expects. A missing Data means an
// empty result, never an error.
type Envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// Pagination holds result-set metadata when the API returns a list.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Artwork is one artwork record. All fields are optional; renderers
// substitute defaults for anything missing.
type Artwork struct {
	ID               *int64 `json:"id"`
	Title            string `json:"title"`
	ArtistDisplay    string `json:"artist_display"`
	DateDisplay      string `json:"date_display"`
	MediumDisplay    string `json:"medium_display"`
	PlaceOfOrigin    string `json:"place_of_origin"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	ImageID          string `json:"image_id"`
}

// Agent is one artist/creator record.
type Agent struct {
	ID          *int64 `json:"id"`
	Title       string `json:"title"`
	BirthDate   string `json:"birth_date"`
	DeathDate   string `json:"death_date"`
	Description string `json:"description"`
}

// Exhibition is one exhibition record.
type Exhibition struct {
	ID               *int64 `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	Status           string `json:"status"`
	AICStartAt       string `json:"aic_start_at"`
	AICEndAt         string `json:"aic_end_at"`
	GalleryTitle     string `json:"gallery_title"`
	WebURL           string `json:"web_url"`
}

// Gallery is one museum gallery record. A missing is_closed means open.
type Gallery struct {
	ID       *int64 `json:"id"`
	Title    string `json:"title"`
	Number   string `json:"number"`
	Floor    string `json:"floor"`
	IsClosed bool   `json:"is_closed"`
}

// SearchResult is one record from the cross-entity search endpoint,
// tagged with its own entity type.
type SearchResult struct {
	ID       *int64 `json:"id"`
	Title    string `json:"title"`
	APIModel string `json:"api_model"`
}

// decodeRecords normalizes an envelope's data to an ordered list: a JSON
// array decodes as-is, a single object is wrapped in a one-element list,
// and absent data yields an empty list.
func decodeRecords[T any](env *Envelope) ([]T, error) {
	if env == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, nil
	}

	var list []T
	if err := json.Unmarshal(env.Data, &list); err == nil {
		return list, nil
	}

	var single T
	if err := json.Unmarshal(env.Data, &single); err != nil {
		return nil, err
	}
	return []T{single}, nil
}
