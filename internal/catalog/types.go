package catalog

// Catalog is the top-level YAML tool table. Every tool is a declarative
// operation template interpreted generically by the dispatcher; there is no
// per-tool code.
type Catalog struct {
	// Server describes the MCP server settings.
	Server ServerConfig `yaml:"server"`
	// Tools lists all tool declarations.
	Tools []ToolConfig `yaml:"tools"`
}

// ServerConfig defines MCP server settings.
type ServerConfig struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `yaml:"transport"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// StartupHooks defines one-time commands executed on start.
	StartupHooks []HookConfig `yaml:"startup_hooks"`
	// HTTP configures the optional HTTP transport.
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables session tracking.
	Stateless bool `yaml:"stateless"`
}

// HookConfig defines a startup hook command (e.g. launching the host app).
type HookConfig struct {
	// Command is the startup command to run.
	Command string `yaml:"command"`
	// Args are optional arguments.
	Args []string `yaml:"args"`
	// Timeout controls hook execution duration.
	Timeout string `yaml:"timeout"`
}

// ToolConfig declares one tool as an operation template.
type ToolConfig struct {
	// Name is the tool name.
	Name string `yaml:"name"`
	// Title is the human-friendly tool title.
	Title string `yaml:"title"`
	// Description explains the tool for the agent.
	Description string `yaml:"description"`
	// Annotations provides optional tool hints.
	Annotations *ToolAnnotationsConfig `yaml:"annotations,omitempty"`
	// Verb selects the operation shape (get, set, count, make, ...).
	Verb string `yaml:"verb"`
	// Class is the object class for count and make operations.
	Class string `yaml:"class"`
	// Property is the property name for get and set operations.
	Property string `yaml:"property"`
	// Command is the raw command word for do_command operations.
	Command string `yaml:"command"`
	// Target addresses the object, innermost segment first.
	Target []SegmentConfig `yaml:"target"`
	// Clauses are optional parameters in their fixed render order. For set
	// operations the first clause binds the new property value.
	Clauses []ClauseConfig `yaml:"clauses"`
	// InputSchema defines JSON Schema for tool input.
	InputSchema map[string]any `yaml:"input_schema"`
	// Limits optionally caps tool usage.
	Limits *LimitsConfig `yaml:"limits"`
}

// SegmentConfig binds one target path segment to an argument or a literal.
type SegmentConfig struct {
	// Class is the object class of the segment (window, tab, document, ...).
	Class string `yaml:"class"`
	// Arg names the tool argument supplying the segment value.
	Arg string `yaml:"arg"`
	// Literal supplies a fixed segment value instead of an argument.
	Literal string `yaml:"literal"`
	// Hint overrides value casting for the segment.
	Hint string `yaml:"hint"`
}

// ClauseConfig binds one optional clause to an argument or a literal.
type ClauseConfig struct {
	// Keyword is the clause keyword rendered before the value.
	Keyword string `yaml:"keyword"`
	// Arg names the tool argument supplying the clause value.
	Arg string `yaml:"arg"`
	// Literal supplies a fixed clause value instead of an argument.
	Literal string `yaml:"literal"`
	// Hint overrides value casting for the clause.
	Hint string `yaml:"hint"`
	// Required rejects the call when the bound argument is absent.
	Required bool `yaml:"required"`
}

// LimitsConfig caps tool usage by total count and rate.
type LimitsConfig struct {
	// MaxTotal limits total calls per process lifetime.
	MaxTotal int `yaml:"max_total"`
	// RatePerMinute limits calls per minute.
	RatePerMinute int `yaml:"rate_per_minute"`
}

// ToolAnnotationsConfig defines tool behavior hints.
type ToolAnnotationsConfig struct {
	// ReadOnlyHint indicates a read-only tool.
	ReadOnlyHint bool `yaml:"read_only_hint,omitempty"`
	// DestructiveHint indicates the tool may be destructive.
	DestructiveHint *bool `yaml:"destructive_hint,omitempty"`
	// IdempotentHint indicates repeated calls have no additional effect.
	IdempotentHint bool `yaml:"idempotent_hint,omitempty"`
	// OpenWorldHint indicates interaction with external entities.
	OpenWorldHint *bool `yaml:"open_world_hint,omitempty"`
	// Title is an optional tool display title.
	Title string `yaml:"title,omitempty"`
}
