package catalog_test

import (
	"testing"

	"github.com/applebridge/osascript-mcp-server/configs"
	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/render"
	"github.com/applebridge/osascript-mcp-server/internal/script"
)

// The embedded default catalog must render, parse, and validate as shipped.
func TestDefaultCatalog(t *testing.T) {
	rendered, err := render.Bytes("tools.yaml", configs.Default())
	if err != nil {
		t.Fatalf("render embedded catalog: %v", err)
	}
	cfg, err := catalog.Load(rendered)
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(cfg.Tools) == 0 {
		t.Fatal("embedded catalog has no tools")
	}

	covered := map[script.Verb]bool{}
	for _, tool := range cfg.Tools {
		covered[script.Verb(tool.Verb)] = true
	}
	for _, verb := range script.Verbs {
		if !covered[verb] {
			t.Errorf("no default tool exercises verb %q", verb)
		}
	}
}
