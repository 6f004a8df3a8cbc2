package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/applebridge/osascript-mcp-server/internal/script"
)

// Validate applies defaults and verifies required fields.
func Validate(cfg *Catalog) error {
	if cfg == nil {
		return fmt.Errorf("catalog is nil")
	}
	if cfg.Server.Name == "" {
		return fmt.Errorf("server.name is required")
	}
	if cfg.Server.Version == "" {
		return fmt.Errorf("server.version is required")
	}
	if cfg.Server.Transport == "" {
		cfg.Server.Transport = "stdio"
	}
	switch cfg.Server.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("server.transport must be stdio or http")
	}
	if cfg.Server.Transport == "http" {
		if cfg.Server.HTTP.Listen == "" {
			cfg.Server.HTTP.Listen = ":8080"
		}
		if cfg.Server.HTTP.Path == "" {
			cfg.Server.HTTP.Path = "/mcp"
		}
	}
	for i, hook := range cfg.Server.StartupHooks {
		if strings.TrimSpace(hook.Command) == "" {
			return fmt.Errorf("server.startup_hooks[%d].command is required", i)
		}
		if err := checkDuration(hook.Timeout); err != nil {
			return fmt.Errorf("server.startup_hooks[%d].timeout is invalid: %w", i, err)
		}
	}

	toolNames := map[string]struct{}{}
	for i := range cfg.Tools {
		if err := validateTool(&cfg.Tools[i]); err != nil {
			return fmt.Errorf("tools[%d]: %w", i, err)
		}
		if _, exists := toolNames[cfg.Tools[i].Name]; exists {
			return fmt.Errorf("duplicate tool name: %s", cfg.Tools[i].Name)
		}
		toolNames[cfg.Tools[i].Name] = struct{}{}
	}
	return nil
}

func validateTool(tool *ToolConfig) error {
	if tool.Name == "" {
		return fmt.Errorf("name is required")
	}
	verb := script.Verb(tool.Verb)
	if !knownVerb(verb) {
		return fmt.Errorf("unknown verb: %s", tool.Verb)
	}
	switch verb {
	case script.VerbGet:
		if tool.Property == "" {
			return fmt.Errorf("property is required for get")
		}
	case script.VerbSet:
		if tool.Property == "" {
			return fmt.Errorf("property is required for set")
		}
		if len(tool.Clauses) == 0 {
			return fmt.Errorf("set requires a value clause")
		}
	case script.VerbCount, script.VerbMake:
		if tool.Class == "" {
			return fmt.Errorf("class is required for %s", verb)
		}
	case script.VerbDoCommand:
		if tool.Command == "" {
			return fmt.Errorf("command is required for do_command")
		}
	}

	args := schemaArgs(tool.InputSchema)
	for j, seg := range tool.Target {
		if seg.Arg == "" && seg.Literal == "" && seg.Class == "" {
			return fmt.Errorf("target[%d] needs a class, arg, or literal", j)
		}
		if seg.Arg != "" && seg.Literal != "" {
			return fmt.Errorf("target[%d] binds both arg and literal", j)
		}
		if seg.Arg != "" && args != nil {
			if _, ok := args[seg.Arg]; !ok {
				return fmt.Errorf("target[%d] binds unknown argument %q", j, seg.Arg)
			}
		}
	}
	for j, clause := range tool.Clauses {
		if clause.Arg == "" && clause.Literal == "" {
			return fmt.Errorf("clauses[%d] needs arg or literal", j)
		}
		if clause.Arg != "" && clause.Literal != "" {
			return fmt.Errorf("clauses[%d] binds both arg and literal", j)
		}
		if clause.Arg != "" && args != nil {
			if _, ok := args[clause.Arg]; !ok {
				return fmt.Errorf("clauses[%d] binds unknown argument %q", j, clause.Arg)
			}
		}
	}

	if tool.Limits != nil {
		if tool.Limits.MaxTotal < 0 {
			return fmt.Errorf("limits.max_total must be >= 0")
		}
		if tool.Limits.RatePerMinute < 0 {
			return fmt.Errorf("limits.rate_per_minute must be >= 0")
		}
	}
	return nil
}

func knownVerb(verb script.Verb) bool {
	for _, known := range script.Verbs {
		if verb == known {
			return true
		}
	}
	return false
}

func schemaArgs(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return nil
	}
	return props
}

func checkDuration(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	_, err := time.ParseDuration(value)
	return err
}
