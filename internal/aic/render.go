package aic

import (
	"fmt"
	"strconv"
	"strings"
)

// Display caps applied after the remote-side limit: how many records of a
// response actually get rendered.
const (
	artworkDisplayCap    = 10
	agentDisplayCap      = 10
	exhibitionDisplayCap = 10
	galleryDisplayCap    = 20
)

// maxDescriptionRunes caps free-text descriptions. Truncation counts runes
// so a multibyte character is never split.
const maxDescriptionRunes = 300

// blockSeparator joins rendered record blocks.
const blockSeparator = "\n---\n"

// Renderer converts result envelopes into readable text, one method per
// entity kind. URL roots come from configuration.
type Renderer struct {
	iiifBaseURL string
	webBaseURL  string
}

// NewRenderer creates a renderer deriving image URLs from iiifBaseURL and
// public site links from webBaseURL.
func NewRenderer(iiifBaseURL, webBaseURL string) *Renderer {
	return &Renderer{
		iiifBaseURL: strings.TrimRight(iiifBaseURL, "/"),
		webBaseURL:  strings.TrimRight(webBaseURL, "/"),
	}
}

// orDefault substitutes def for a missing string field.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// formatID renders a record id, or "Unknown" when the record carried none.
func formatID(id *int64) string {
	if id == nil {
		return "Unknown"
	}
	return strconv.FormatInt(*id, 10)
}

// truncateDescription caps a description at maxDescriptionRunes runes,
// appending an ellipsis marker only when something was cut.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionRunes {
		return s
	}
	return string(runes[:maxDescriptionRunes]) + "..."
}

// renderedCount is how many records a renderer actually emitted given its
// display cap.
func renderedCount(total, limit int) int {
	if total < limit {
		return total
	}
	return limit
}

// RenderArtworks formats artwork records: labeled field block, optional
// IIIF image URL at the medium (843px wide) preset, and a public site
// link. Includes a page summary when pagination is present.
func (r *Renderer) RenderArtworks(env *Envelope) (string, error) {
	if env == nil || len(env.Data) == 0 {
		return "No artwork data found.", nil
	}

	artworks, err := decodeRecords[Artwork](env)
	if err != nil {
		return "", err
	}
	if len(artworks) == 0 {
		return "No artworks found.", nil
	}

	var blocks []string
	for _, artwork := range artworks[:renderedCount(len(artworks), artworkDisplayCap)] {
		description := artwork.ShortDescription
		if description == "" {
			description = artwork.Description
		}
		description = orDefault(description, "No description available")

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("\n**%s**\n", orDefault(artwork.Title, "Untitled")))
		sb.WriteString(fmt.Sprintf("ID: %s\n", formatID(artwork.ID)))
		sb.WriteString(fmt.Sprintf("Artist: %s\n", orDefault(artwork.ArtistDisplay, "Unknown artist")))
		sb.WriteString(fmt.Sprintf("Date: %s\n", orDefault(artwork.DateDisplay, "Unknown date")))
		sb.WriteString(fmt.Sprintf("Medium: %s\n", orDefault(artwork.MediumDisplay, "Unknown medium")))
		sb.WriteString(fmt.Sprintf("Origin: %s\n", orDefault(artwork.PlaceOfOrigin, "Unknown origin")))
		sb.WriteString(fmt.Sprintf("Description: %s\n", truncateDescription(description)))

		if artwork.ImageID != "" {
			sb.WriteString(fmt.Sprintf("Image: %s/%s/full/843,/0/default.jpg\n", r.iiifBaseURL, artwork.ImageID))
		}
		if artwork.ID != nil {
			sb.WriteString(fmt.Sprintf("View online: %s/artworks/%d\n", r.webBaseURL, *artwork.ID))
		}

		blocks = append(blocks, sb.String())
	}

	if env.Pagination != nil {
		p := env.Pagination
		blocks = append(blocks, fmt.Sprintf("\nShowing %d of %d total results (Page %d/%d)",
			renderedCount(len(artworks), artworkDisplayCap), p.Total, p.CurrentPage, p.TotalPages))
	}

	return strings.Join(blocks, blockSeparator), nil
}

// RenderAgents formats artist/creator records.
func (r *Renderer) RenderAgents(env *Envelope) (string, error) {
	if env == nil || len(env.Data) == 0 {
		return "No agent data found.", nil
	}

	agents, err := decodeRecords[Agent](env)
	if err != nil {
		return "", err
	}
	if len(agents) == 0 {
		return "No agents found.", nil
	}

	var blocks []string
	for _, agent := range agents[:renderedCount(len(agents), agentDisplayCap)] {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("\n**%s**\n", orDefault(agent.Title, "Unknown")))
		sb.WriteString(fmt.Sprintf("ID: %s\n", formatID(agent.ID)))
		sb.WriteString(fmt.Sprintf("Birth: %s\n", orDefault(agent.BirthDate, "Unknown")))
		sb.WriteString(fmt.Sprintf("Death: %s\n", orDefault(agent.DeathDate, "Unknown")))
		sb.WriteString(fmt.Sprintf("Description: %s\n",
			truncateDescription(orDefault(agent.Description, "No description available"))))
		blocks = append(blocks, sb.String())
	}

	if env.Pagination != nil {
		blocks = append(blocks, fmt.Sprintf("\nShowing %d of %d total results",
			renderedCount(len(agents), agentDisplayCap), env.Pagination.Total))
	}

	return strings.Join(blocks, blockSeparator), nil
}

// RenderExhibitions formats exhibition records, appending the exhibition's
// own web URL when the record carries one.
func (r *Renderer) RenderExhibitions(env *Envelope) (string, error) {
	if env == nil || len(env.Data) == 0 {
		return "No exhibition data found.", nil
	}

	exhibitions, err := decodeRecords[Exhibition](env)
	if err != nil {
		return "", err
	}
	if len(exhibitions) == 0 {
		return "No exhibitions found.", nil
	}

	var blocks []string
	for _, exhibition := range exhibitions[:renderedCount(len(exhibitions), exhibitionDisplayCap)] {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("\n**%s**\n", orDefault(exhibition.Title, "Untitled Exhibition")))
		sb.WriteString(fmt.Sprintf("ID: %s\n", formatID(exhibition.ID)))
		sb.WriteString(fmt.Sprintf("Status: %s\n", orDefault(exhibition.Status, "Unknown")))
		sb.WriteString(fmt.Sprintf("Dates: %s to %s\n",
			orDefault(exhibition.AICStartAt, "Unknown"), orDefault(exhibition.AICEndAt, "Unknown")))
		sb.WriteString(fmt.Sprintf("Location: %s\n", orDefault(exhibition.GalleryTitle, "Unknown location")))
		sb.WriteString(fmt.Sprintf("Description: %s\n",
			truncateDescription(orDefault(exhibition.ShortDescription, "No description available"))))

		if exhibition.WebURL != "" {
			sb.WriteString(fmt.Sprintf("More info: %s\n", exhibition.WebURL))
		}

		blocks = append(blocks, sb.String())
	}

	if env.Pagination != nil {
		blocks = append(blocks, fmt.Sprintf("\nShowing %d of %d total results",
			renderedCount(len(exhibitions), exhibitionDisplayCap), env.Pagination.Total))
	}

	return strings.Join(blocks, blockSeparator), nil
}

// RenderGalleries formats gallery records with an Open/Closed status label.
// A record without is_closed counts as open.
func (r *Renderer) RenderGalleries(env *Envelope) (string, error) {
	if env == nil || len(env.Data) == 0 {
		return "No gallery data found.", nil
	}

	galleries, err := decodeRecords[Gallery](env)
	if err != nil {
		return "", err
	}
	if len(galleries) == 0 {
		return "No galleries found.", nil
	}

	var blocks []string
	for _, gallery := range galleries[:renderedCount(len(galleries), galleryDisplayCap)] {
		status := "Open"
		if gallery.IsClosed {
			status = "Closed"
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("\n**%s**\n", orDefault(gallery.Title, "Unknown Gallery")))
		sb.WriteString(fmt.Sprintf("ID: %s\n", formatID(gallery.ID)))
		sb.WriteString(fmt.Sprintf("Gallery Number: %s\n", orDefault(gallery.Number, "Unknown")))
		sb.WriteString(fmt.Sprintf("Floor: %s\n", orDefault(gallery.Floor, "Unknown")))
		sb.WriteString(fmt.Sprintf("Status: %s\n", status))
		blocks = append(blocks, sb.String())
	}

	if env.Pagination != nil {
		blocks = append(blocks, fmt.Sprintf("\nShowing %d of %d total results",
			renderedCount(len(galleries), galleryDisplayCap), env.Pagination.Total))
	}

	return strings.Join(blocks, blockSeparator), nil
}

// RenderSearchResults formats cross-entity search records: title, entity
// type tag, and id, one line each. The display cap is the caller's
// normalized limit.
func (r *Renderer) RenderSearchResults(env *Envelope, limit int) (string, error) {
	if env == nil || len(env.Data) == 0 {
		return "No results found.", nil
	}

	results, err := decodeRecords[SearchResult](env)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "No results found.", nil
	}

	if limit < 1 {
		limit = 1
	}

	var lines []string
	for _, item := range results[:renderedCount(len(results), limit)] {
		lines = append(lines, fmt.Sprintf("**%s** (Type: %s, ID: %s)",
			orDefault(item.Title, "Untitled"), orDefault(item.APIModel, "unknown"), formatID(item.ID)))
	}

	text := strings.Join(lines, "\n")
	if env.Pagination != nil {
		text += fmt.Sprintf("\n\nShowing %d of %d total results", len(lines), env.Pagination.Total)
	}

	return text, nil
}
