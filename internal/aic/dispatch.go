package aic

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/AlexLin1234/chicago-art-museum-mcp-server/internal/common"
)

// toolSpec binds one tool name to its normalizer, endpoint path builder,
// and renderer. Adding a tool is a table entry, not a new branch.
type toolSpec struct {
	normalize func(args map[string]any) (Params, error)
	path      func(args map[string]any) (string, error)
	render    func(env *Envelope, args map[string]any) (string, error)
}

// Dispatcher routes a tool invocation through the normalize → execute →
// render pipeline. It always produces a textual reply; no failure
// propagates past it.
type Dispatcher struct {
	client   *Client
	renderer *Renderer
	logger   *common.Logger
	tools    map[string]toolSpec
}

// NewDispatcher builds the static tool table over the given client and
// renderer.
func NewDispatcher(client *Client, renderer *Renderer, logger *common.Logger) *Dispatcher {
	d := &Dispatcher{
		client:   client,
		renderer: renderer,
		logger:   logger,
	}

	d.tools = map[string]toolSpec{
		"search_artworks": {
			normalize: func(args map[string]any) (Params, error) { return normalizeSearch(args, 10, true) },
			path:      staticPath("artworks/search"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderArtworks(env)
			},
		},
		"get_artwork": {
			normalize: normalizeFieldsOnly,
			path:      idPath("artworks", "artwork_id"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderArtworks(env)
			},
		},
		"search_agents": {
			normalize: func(args map[string]any) (Params, error) { return normalizeSearch(args, 10, false) },
			path:      staticPath("agents/search"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderAgents(env)
			},
		},
		"get_agent": {
			normalize: normalizeNone,
			path:      idPath("agents", "agent_id"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderAgents(env)
			},
		},
		"search_exhibitions": {
			normalize: func(args map[string]any) (Params, error) { return normalizeSearch(args, 10, false) },
			path:      staticPath("exhibitions/search"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderExhibitions(env)
			},
		},
		"get_exhibition": {
			normalize: normalizeNone,
			path:      idPath("exhibitions", "exhibition_id"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderExhibitions(env)
			},
		},
		"list_galleries": {
			normalize: func(args map[string]any) (Params, error) { return normalizeListing(args, 20) },
			path:      staticPath("galleries"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderGalleries(env)
			},
		},
		"get_gallery": {
			normalize: normalizeNone,
			path:      idPath("galleries", "gallery_id"),
			render: func(env *Envelope, _ map[string]any) (string, error) {
				return renderer.RenderGalleries(env)
			},
		},
		"search_all": {
			normalize: func(args map[string]any) (Params, error) { return normalizeGlobalSearch(args, 10) },
			path:      staticPath("search"),
			render: func(env *Envelope, args map[string]any) (string, error) {
				return renderer.RenderSearchResults(env, clampLimit(args, 10))
			},
		},
	}

	return d
}

// staticPath returns a path builder for endpoints with no id segment.
func staticPath(path string) func(map[string]any) (string, error) {
	return func(map[string]any) (string, error) {
		return path, nil
	}
}

// idPath returns a path builder that interpolates a required id argument
// into the endpoint path. The id is path-escaped, never sent as a query
// parameter.
func idPath(prefix, key string) func(map[string]any) (string, error) {
	return func(args map[string]any) (string, error) {
		if n, ok := intArg(args, key); ok {
			return fmt.Sprintf("%s/%d", prefix, n), nil
		}
		if id, ok := stringArg(args, key); ok {
			return prefix + "/" + url.PathEscape(id), nil
		}
		return "", &ValidationError{Param: key}
	}
}

// Dispatch runs the full pipeline for one tool invocation and returns the
// reply text plus an error flag for the transport layer. It never returns
// a Go error: unknown tools, validation conditions, API failures, and
// renderer defects all come back as text.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (text string, isError bool) {
	logger := d.logger.WithCorrelationId(uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("tool", name).Msg(fmt.Sprintf("panic in tool handler: %v", r))
			text = fmt.Sprintf("Unexpected error: %v", r)
			isError = true
		}
	}()

	spec, ok := d.tools[name]
	if !ok {
		logger.Warn().Str("tool", name).Msg("Unknown tool requested")
		return fmt.Sprintf("Unknown tool: %s", name), false
	}

	logger.Info().Str("tool", name).Msg("Dispatching tool call")

	path, err := spec.path(args)
	if err != nil {
		return validationText(name, err, logger)
	}

	params, err := spec.normalize(args)
	if err != nil {
		return validationText(name, err, logger)
	}

	env, err := d.client.Execute(ctx, path, params)
	if err != nil {
		logger.Error().Err(err).Str("tool", name).Msg("API error")
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return fmt.Sprintf("Error: %s", apiErr.Error()), true
		}
		return fmt.Sprintf("Unexpected error: %v", err), true
	}

	result, err := spec.render(env, args)
	if err != nil {
		logger.Error().Err(err).Str("tool", name).Msg("Render error")
		return fmt.Sprintf("Unexpected error: %v", err), true
	}

	return result, false
}

// validationText converts a normalizer failure into a reply. Validation
// conditions get a plain explanation; anything else is reported as
// unexpected.
func validationText(name string, err error, logger *common.Logger) (string, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		logger.Warn().Str("tool", name).Str("param", vErr.Param).Msg("Missing required parameter")
		return fmt.Sprintf("Error: %s", vErr.Error()), true
	}
	logger.Error().Err(err).Str("tool", name).Msg("Argument error")
	return fmt.Sprintf("Unexpected error: %v", err), true
}
