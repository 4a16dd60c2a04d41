package aic

import (
	"errors"
	"testing"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		def  int
		want int
	}{
		{"missing uses default", map[string]any{}, 10, 10},
		{"above max saturates", map[string]any{"limit": 500}, 10, 100},
		{"at max unchanged", map[string]any{"limit": 100}, 10, 100},
		{"at min unchanged", map[string]any{"limit": 1}, 10, 1},
		{"zero uses default", map[string]any{"limit": 0}, 10, 10},
		{"negative uses default", map[string]any{"limit": -5}, 20, 20},
		{"json float64 accepted", map[string]any{"limit": float64(50)}, 10, 50},
		{"numeric string accepted", map[string]any{"limit": "25"}, 10, 25},
		{"garbage uses default", map[string]any{"limit": "lots"}, 10, 10},
		{"gallery default", map[string]any{}, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampLimit(tt.args, tt.def); got != tt.want {
				t.Errorf("clampLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageArg(t *testing.T) {
	if got := pageArg(map[string]any{}); got != 1 {
		t.Errorf("missing page = %d, want 1", got)
	}
	if got := pageArg(map[string]any{"page": float64(7)}); got != 7 {
		t.Errorf("page 7 = %d, want 7", got)
	}
	if got := pageArg(map[string]any{"page": 0}); got != 1 {
		t.Errorf("page 0 = %d, want 1", got)
	}
	// No upper bound is enforced on page
	if got := pageArg(map[string]any{"page": 100000}); got != 100000 {
		t.Errorf("page 100000 = %d, want 100000", got)
	}
}

func TestNormalizeSearch_Defaults(t *testing.T) {
	params, err := normalizeSearch(map[string]any{"query": "monet"}, 10, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if params["q"] != "monet" {
		t.Errorf("Expected q=monet, got %q", params["q"])
	}
	if params["limit"] != "10" {
		t.Errorf("Expected limit=10, got %q", params["limit"])
	}
	if params["page"] != "1" {
		t.Errorf("Expected page=1, got %q", params["page"])
	}
	if _, ok := params["fields"]; ok {
		t.Error("fields should be omitted when not provided")
	}
}

func TestNormalizeSearch_MissingQuery(t *testing.T) {
	_, err := normalizeSearch(map[string]any{"limit": 10}, 10, true)
	if err == nil {
		t.Fatal("Expected error for missing query")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if vErr.Param != "query" {
		t.Errorf("Expected param=query, got %q", vErr.Param)
	}
}

func TestNormalizeSearch_NullArgumentsDropped(t *testing.T) {
	// A client sending explicit nulls must not produce keys in the
	// outbound parameter set.
	params, err := normalizeSearch(map[string]any{
		"query":  "monet",
		"fields": nil,
	}, 10, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := params["fields"]; ok {
		t.Error("null fields should be dropped from params")
	}
}

func TestNormalizeSearch_FieldsPassthrough(t *testing.T) {
	params, err := normalizeSearch(map[string]any{
		"query":  "monet",
		"fields": "title,artist_display,image_id",
	}, 10, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params["fields"] != "title,artist_display,image_id" {
		t.Errorf("fields not passed through verbatim: %q", params["fields"])
	}

	// Tools without a fields parameter ignore it even when sent
	params, err = normalizeSearch(map[string]any{
		"query":  "monet",
		"fields": "title",
	}, 10, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := params["fields"]; ok {
		t.Error("fields should not be forwarded by tools that do not declare it")
	}
}

func TestNormalizeFieldsOnly(t *testing.T) {
	params, err := normalizeFieldsOnly(map[string]any{"artwork_id": 42})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(params) != 0 {
		t.Errorf("Expected empty params, got %v", params)
	}

	params, err = normalizeFieldsOnly(map[string]any{"artwork_id": 42, "fields": "title"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params["fields"] != "title" {
		t.Errorf("Expected fields=title, got %q", params["fields"])
	}
}

func TestNormalizeListing(t *testing.T) {
	params, err := normalizeListing(map[string]any{}, 20)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params["limit"] != "20" {
		t.Errorf("Expected limit=20, got %q", params["limit"])
	}
	if params["page"] != "1" {
		t.Errorf("Expected page=1, got %q", params["page"])
	}
	if _, ok := params["q"]; ok {
		t.Error("listing params should not contain a search term")
	}
}

func TestNormalizeGlobalSearch(t *testing.T) {
	params, err := normalizeGlobalSearch(map[string]any{"query": "impressionism", "limit": 250}, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params["q"] != "impressionism" {
		t.Errorf("Expected q=impressionism, got %q", params["q"])
	}
	if params["limit"] != "100" {
		t.Errorf("Expected limit clamped to 100, got %q", params["limit"])
	}
	if _, ok := params["page"]; ok {
		t.Error("global search should not send a page parameter")
	}

	if _, err := normalizeGlobalSearch(map[string]any{}, 10); err == nil {
		t.Error("Expected error for missing query")
	}
}
