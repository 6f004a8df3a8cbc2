package dispatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/protocol"
	"github.com/applebridge/osascript-mcp-server/internal/script"
)

func TestBuildOperation_OptionalClauseDropped(t *testing.T) {
	cfg := catalog.ToolConfig{
		Name:   "close_window",
		Verb:   "close",
		Target: []catalog.SegmentConfig{{Class: "window", Arg: "window"}},
		Clauses: []catalog.ClauseConfig{
			{Keyword: "saving", Arg: "saving", Hint: "constant"},
		},
	}
	op, err := buildOperation("iTerm2", cfg, map[string]any{"window": "Main"})
	if err != nil {
		t.Fatalf("buildOperation failed: %v", err)
	}
	text := script.Compose(op)
	if strings.Contains(text, "saving") {
		t.Errorf("absent optional clause rendered:\n%s", text)
	}
}

func TestBuildOperation_MissingValueHint(t *testing.T) {
	cfg := catalog.ToolConfig{
		Name:     "set_current_settings",
		Verb:     "set",
		Property: "current settings",
		Target:   []catalog.SegmentConfig{{Class: "window", Arg: "window"}},
		Clauses: []catalog.ClauseConfig{
			{Keyword: "", Arg: "value", Hint: "missing_value"},
		},
	}
	op, err := buildOperation("iTerm2", cfg, map[string]any{"window": "1"})
	if err != nil {
		t.Fatalf("buildOperation failed: %v", err)
	}
	text := script.Compose(op)
	if !strings.Contains(text, "set current settings of it to missing value") {
		t.Errorf("missing value placeholder not rendered:\n%s", text)
	}
}

func TestBuildOperation_LiteralSegment(t *testing.T) {
	cfg := catalog.ToolConfig{
		Name:     "get_session_contents",
		Verb:     "get",
		Property: "contents",
		Target: []catalog.SegmentConfig{
			{Class: "current session"},
			{Class: "window", Arg: "window"},
		},
	}
	op, err := buildOperation("iTerm2", cfg, map[string]any{"window": float64(2)})
	if err != nil {
		t.Fatalf("buildOperation failed: %v", err)
	}
	text := script.Compose(op)
	if !strings.Contains(text, "tell current session of window 2") {
		t.Errorf("target path wrong:\n%s", text)
	}
}

func TestBuildOperation_NonScalarTargetRejected(t *testing.T) {
	cfg := catalog.ToolConfig{
		Name:   "get_window",
		Verb:   "get",
		Target: []catalog.SegmentConfig{{Class: "window", Arg: "window"}},
	}
	_, err := buildOperation("iTerm2", cfg, map[string]any{"window": []any{"Main"}})
	if err == nil {
		t.Fatal("list-valued target argument accepted")
	}
	if !errors.Is(err, protocol.ErrValidation) {
		t.Errorf("error is not a validation error: %v", err)
	}
}
