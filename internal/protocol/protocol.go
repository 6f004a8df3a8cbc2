package protocol

import "errors"

// SentinelFailure is the interpreter output that marks a failed script run.
// Success of a tool call is defined as "the interpreter output does not equal
// this string", not as semantic success of the host operation.
const SentinelFailure = "execution error"

// UnavailableMessage is returned when the host application fails the probe.
const UnavailableMessage = "Application is not available or not running"

// Error kinds matched with errors.Is at the dispatcher boundary.
var (
	// ErrValidation marks a missing or malformed tool argument.
	ErrValidation = errors.New("validation error")
	// ErrUnavailable marks a failed availability probe.
	ErrUnavailable = errors.New(UnavailableMessage)
	// ErrExecution marks an interpreter failure after retries exhausted.
	ErrExecution = errors.New("execution error")
	// ErrUnknownOperation marks a tool name with no catalog entry.
	ErrUnknownOperation = errors.New("unknown operation")
)

// ToolResponse is the fixed JSON envelope returned to MCP clients.
type ToolResponse struct {
	// Success reports whether the interpreter ran the script without
	// reporting the sentinel failure value.
	Success bool `json:"success"`
	// Result carries the trimmed interpreter output on success.
	Result string `json:"result,omitempty"`
	// Error carries a human-readable message on failure.
	Error string `json:"error,omitempty"`
	// Tool echoes the invoked tool name.
	Tool string `json:"tool,omitempty"`
	// Script echoes the composed script text.
	Script string `json:"script,omitempty"`
	// Args echoes the input arguments.
	Args map[string]any `json:"args,omitempty"`
}
