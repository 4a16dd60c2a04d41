package aic

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// Request limit bounds applied to every tool. Values outside the range
// saturate rather than erroring.
const (
	minLimit = 1
	maxLimit = 100
)

// Params is the outbound query parameter set for one API request. By the
// time a Params exists, every value is a concrete string — absent or null
// arguments never make it in.
type Params map[string]string

// ValidationError reports a missing required argument. The dispatcher
// converts it to a plain text explanation without calling the API.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s parameter is required", e.Param)
}

// stringArg extracts a non-empty string argument, tolerating whatever
// scalar type the MCP client sent.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

// intArg extracts an integer argument. JSON numbers arrive as float64;
// cast also accepts numeric strings.
func intArg(args map[string]any, key string) (int, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// clampLimit resolves the limit argument: missing or non-positive values
// fall back to the tool default, then the result saturates into
// [minLimit, maxLimit].
func clampLimit(args map[string]any, def int) int {
	limit, ok := intArg(args, "limit")
	if !ok || limit <= 0 {
		limit = def
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

// pageArg resolves the page argument, defaulting to 1. No upper bound is
// enforced; the API handles out-of-range pages itself.
func pageArg(args map[string]any) int {
	page, ok := intArg(args, "page")
	if !ok || page < 1 {
		return 1
	}
	return page
}

// normalizeSearch builds the parameter set for the paginated search tools
// (artworks, agents, exhibitions). The query term is required; fields is
// passed through only for tools that declare it.
func normalizeSearch(args map[string]any, defLimit int, withFields bool) (Params, error) {
	query, ok := stringArg(args, "query")
	if !ok {
		return nil, &ValidationError{Param: "query"}
	}

	params := Params{
		"q":     query,
		"limit": strconv.Itoa(clampLimit(args, defLimit)),
		"page":  strconv.Itoa(pageArg(args)),
	}
	if withFields {
		if fields, ok := stringArg(args, "fields"); ok {
			params["fields"] = fields
		}
	}
	return params, nil
}

// normalizeFieldsOnly builds the parameter set for single-record lookups
// that accept a fields selection. An empty Params encodes to no query
// string at all.
func normalizeFieldsOnly(args map[string]any) (Params, error) {
	params := Params{}
	if fields, ok := stringArg(args, "fields"); ok {
		params["fields"] = fields
	}
	return params, nil
}

// normalizeNone is for lookups that take no query parameters.
func normalizeNone(map[string]any) (Params, error) {
	return Params{}, nil
}

// normalizeListing builds the parameter set for the gallery listing:
// limit and page only, no search term.
func normalizeListing(args map[string]any, defLimit int) (Params, error) {
	return Params{
		"limit": strconv.Itoa(clampLimit(args, defLimit)),
		"page":  strconv.Itoa(pageArg(args)),
	}, nil
}

// normalizeGlobalSearch builds the parameter set for the cross-entity
// search tool: query and limit, no page.
func normalizeGlobalSearch(args map[string]any, defLimit int) (Params, error) {
	query, ok := stringArg(args, "query")
	if !ok {
		return nil, &ValidationError{Param: "query"}
	}
	return Params{
		"q":     query,
		"limit": strconv.Itoa(clampLimit(args, defLimit)),
	}, nil
}
