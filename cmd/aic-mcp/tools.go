package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AlexLin1234/chicago-art-museum-mcp-server/internal/aic"
)

// registerTools registers all MCP tools on the server, wiring each to a
// handler that routes through the dispatcher.
func registerTools(s *server.MCPServer, d *aic.Dispatcher) {
	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createSearchArtworksTool(), handleTool(d, "search_artworks"))
	s.AddTool(createGetArtworkTool(), handleTool(d, "get_artwork"))
	s.AddTool(createSearchAgentsTool(), handleTool(d, "search_agents"))
	s.AddTool(createGetAgentTool(), handleTool(d, "get_agent"))
	s.AddTool(createSearchExhibitionsTool(), handleTool(d, "search_exhibitions"))
	s.AddTool(createGetExhibitionTool(), handleTool(d, "get_exhibition"))
	s.AddTool(createListGalleriesTool(), handleTool(d, "list_galleries"))
	s.AddTool(createGetGalleryTool(), handleTool(d, "get_gallery"))
	s.AddTool(createSearchAllTool(), handleTool(d, "search_all"))
}

// --- Tool definitions ---

func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the AIC MCP server version and status. Use this to verify connectivity."),
	)
}

func createSearchArtworksTool() mcp.Tool {
	return mcp.NewTool("search_artworks",
		mcp.WithDescription("Search for artworks in the Art Institute of Chicago collection. Returns artwork details including title, artist, date, medium, description, and images. Supports full-text search across all artwork metadata."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (e.g., 'Monet', 'impressionism', 'landscape')")),
		mcp.WithNumber("limit", mcp.Description("Number of results to return (default: 10, max: 100)")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1)")),
		mcp.WithString("fields", mcp.Description("Comma-separated list of fields to return (e.g., 'title,artist_display,image_id')")),
	)
}

func createGetArtworkTool() mcp.Tool {
	return mcp.NewTool("get_artwork",
		mcp.WithDescription("Get detailed information about a specific artwork by its ID. Returns complete artwork metadata including dimensions, provenance, exhibition history, and high-resolution images."),
		mcp.WithNumber("artwork_id", mcp.Required(), mcp.Description("The unique ID of the artwork")),
		mcp.WithString("fields", mcp.Description("Comma-separated list of fields to return")),
	)
}

func createSearchAgentsTool() mcp.Tool {
	return mcp.NewTool("search_agents",
		mcp.WithDescription("Search for artists, creators, and cultural agents. Returns biographical information including birth/death dates and descriptions."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (e.g., artist name or cultural movement)")),
		mcp.WithNumber("limit", mcp.Description("Number of results to return (default: 10, max: 100)")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1)")),
	)
}

func createGetAgentTool() mcp.Tool {
	return mcp.NewTool("get_agent",
		mcp.WithDescription("Get detailed information about a specific artist or cultural agent by ID."),
		mcp.WithNumber("agent_id", mcp.Required(), mcp.Description("The unique ID of the agent/artist")),
	)
}

func createSearchExhibitionsTool() mcp.Tool {
	return mcp.NewTool("search_exhibitions",
		mcp.WithDescription("Search for current, past, and upcoming exhibitions. Returns exhibition details including dates, locations, and descriptions."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (e.g., exhibition theme or title)")),
		mcp.WithNumber("limit", mcp.Description("Number of results to return (default: 10, max: 100)")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1)")),
	)
}

func createGetExhibitionTool() mcp.Tool {
	return mcp.NewTool("get_exhibition",
		mcp.WithDescription("Get detailed information about a specific exhibition by ID."),
		mcp.WithNumber("exhibition_id", mcp.Required(), mcp.Description("The unique ID of the exhibition")),
	)
}

func createListGalleriesTool() mcp.Tool {
	return mcp.NewTool("list_galleries",
		mcp.WithDescription("List museum galleries with their locations and current status. Useful for finding where artworks are displayed."),
		mcp.WithNumber("limit", mcp.Description("Number of results to return (default: 20, max: 100)")),
		mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1)")),
	)
}

func createGetGalleryTool() mcp.Tool {
	return mcp.NewTool("get_gallery",
		mcp.WithDescription("Get detailed information about a specific gallery by ID."),
		mcp.WithNumber("gallery_id", mcp.Required(), mcp.Description("The unique ID of the gallery")),
	)
}

func createSearchAllTool() mcp.Tool {
	return mcp.NewTool("search_all",
		mcp.WithDescription("Search across all content types in the museum collection (artworks, agents, exhibitions, galleries, and more). Best for broad exploratory searches."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
		mcp.WithNumber("limit", mcp.Description("Number of results to return (default: 10, max: 100)")),
	)
}
