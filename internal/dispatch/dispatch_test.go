package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/protocol"
)

type stubRunner struct {
	available bool
	output    string
	err       error
	scripts   []string
	probes    int
}

func (s *stubRunner) Run(_ context.Context, script string) (string, error) {
	s.scripts = append(s.scripts, script)
	return s.output, s.err
}

func (s *stubRunner) Probe(_ context.Context, _ string) bool {
	s.probes++
	return s.available
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Server: catalog.ServerConfig{Name: "test", Version: "0.0.1", Transport: "stdio"},
		Tools: []catalog.ToolConfig{
			{
				Name:     "get_name_of_window",
				Verb:     "get",
				Property: "name",
				Target:   []catalog.SegmentConfig{{Class: "window", Arg: "window"}},
				InputSchema: map[string]any{
					"type":       "object",
					"properties": map[string]any{"window": map[string]any{"type": "string"}},
					"required":   []any{"window"},
				},
			},
			{
				Name:     "set_name_of_window",
				Verb:     "set",
				Property: "name",
				Target:   []catalog.SegmentConfig{{Class: "window", Arg: "window"}},
				Clauses:  []catalog.ClauseConfig{{Keyword: "", Arg: "name", Required: true, Hint: "string"}},
			},
			{
				Name:   "delete_settings_set",
				Verb:   "delete",
				Target: []catalog.SegmentConfig{{Class: "settings set", Arg: "settings_set"}},
				Limits: &catalog.LimitsConfig{MaxTotal: 1},
			},
		},
	}
}

func newTestDispatcher(runner Runner) *Dispatcher {
	return New(testCatalog(), runner, "iTerm2", nil, nil)
}

func TestHandle_UnavailableShortCircuits(t *testing.T) {
	runner := &stubRunner{available: false}
	d := newTestDispatcher(runner)

	resp := d.Handle(context.Background(), "get_name_of_window", map[string]any{"window": "Main"})
	if resp.Success {
		t.Fatal("response succeeded while application is unavailable")
	}
	if resp.Error != protocol.UnavailableMessage {
		t.Errorf("Error = %q, want %q", resp.Error, protocol.UnavailableMessage)
	}
	if len(runner.scripts) != 0 {
		t.Errorf("operation script was executed anyway: %v", runner.scripts)
	}
	if resp.Script != "" {
		t.Errorf("response echoes a script that never existed: %q", resp.Script)
	}
}

func TestHandle_GetSuccess(t *testing.T) {
	runner := &stubRunner{available: true, output: "Main"}
	d := newTestDispatcher(runner)

	args := map[string]any{"window": "Main"}
	resp := d.Handle(context.Background(), "get_name_of_window", args)
	if !resp.Success {
		t.Fatalf("Handle failed: %s", resp.Error)
	}
	if resp.Result != "Main" {
		t.Errorf("Result = %q", resp.Result)
	}
	if resp.Tool != "get_name_of_window" {
		t.Errorf("Tool = %q", resp.Tool)
	}
	if len(runner.scripts) != 1 {
		t.Fatalf("executed %d scripts, want 1", len(runner.scripts))
	}
	if !strings.Contains(runner.scripts[0], `tell window "Main"`) || !strings.Contains(runner.scripts[0], "return name of it") {
		t.Errorf("composed script wrong:\n%s", runner.scripts[0])
	}
	if resp.Script != runner.scripts[0] {
		t.Error("response does not echo the executed script")
	}
	if len(resp.Args) != len(args) {
		t.Error("response does not echo the input arguments")
	}
	if runner.probes != 1 {
		t.Errorf("probed %d times, want 1", runner.probes)
	}
}

func TestHandle_SentinelOutputIsFailure(t *testing.T) {
	runner := &stubRunner{available: true, output: protocol.SentinelFailure}
	d := newTestDispatcher(runner)

	resp := d.Handle(context.Background(), "get_name_of_window", map[string]any{"window": "1"})
	if resp.Success {
		t.Error("sentinel output reported as success")
	}
	if resp.Error != protocol.SentinelFailure {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestHandle_UnknownTool(t *testing.T) {
	runner := &stubRunner{available: true}
	d := newTestDispatcher(runner)

	resp := d.Handle(context.Background(), "no_such_tool", nil)
	if resp.Success {
		t.Fatal("unknown tool reported as success")
	}
	if !strings.Contains(resp.Error, "unknown operation") {
		t.Errorf("Error = %q", resp.Error)
	}
	if runner.probes != 0 {
		t.Error("probed before resolving the tool name")
	}
}

func TestHandle_MissingRequiredArgument(t *testing.T) {
	runner := &stubRunner{available: true}
	d := newTestDispatcher(runner)

	resp := d.Handle(context.Background(), "set_name_of_window", map[string]any{"window": "Main"})
	if resp.Success {
		t.Fatal("missing argument reported as success")
	}
	if !strings.Contains(resp.Error, `"name"`) {
		t.Errorf("Error = %q, want missing-argument message", resp.Error)
	}
	if len(runner.scripts) != 0 {
		t.Error("script executed despite validation failure")
	}
}

func TestHandle_ExecutionErrorNormalized(t *testing.T) {
	runner := &stubRunner{available: true, err: errors.New("script failed: boom")}
	d := newTestDispatcher(runner)

	resp := d.Handle(context.Background(), "get_name_of_window", map[string]any{"window": "Main"})
	if resp.Success {
		t.Fatal("execution error reported as success")
	}
	if !strings.Contains(resp.Error, "boom") {
		t.Errorf("Error = %q", resp.Error)
	}
	if resp.Script == "" {
		t.Error("failed execution should still echo the composed script")
	}
}

func TestHandle_MaxTotalLimit(t *testing.T) {
	runner := &stubRunner{available: true, output: "done"}
	d := newTestDispatcher(runner)

	args := map[string]any{"settings_set": "Old"}
	first := d.Handle(context.Background(), "delete_settings_set", args)
	if !first.Success {
		t.Fatalf("first call failed: %s", first.Error)
	}
	second := d.Handle(context.Background(), "delete_settings_set", args)
	if second.Success {
		t.Fatal("second call exceeded max_total but succeeded")
	}
	if !strings.Contains(second.Error, "maximum number of calls") {
		t.Errorf("Error = %q", second.Error)
	}
}
