package security

import (
	"strings"
	"testing"
)

func TestRedactArguments(t *testing.T) {
	args := map[string]any{
		"window":     "Main",
		"api_token":  "supersecret",
		"text":       strings.Repeat("x", 1000),
		"newline":    true,
		"passphrase": "hunter2",
	}
	redacted := RedactArguments(args)

	if redacted["window"] != "Main" {
		t.Errorf("plain value changed: %v", redacted["window"])
	}
	if redacted["api_token"] != "***" || redacted["passphrase"] != "***" {
		t.Error("secret-looking keys not masked")
	}
	text, _ := redacted["text"].(string)
	if len(text) > 300 || !strings.HasSuffix(text, "(truncated)") {
		t.Errorf("long text not truncated: %d bytes", len(text))
	}
	if redacted["newline"] != true {
		t.Errorf("non-string value changed: %v", redacted["newline"])
	}
	// Original map is untouched.
	if args["api_token"] != "supersecret" {
		t.Error("input map mutated")
	}
}

func TestRedactArguments_Nil(t *testing.T) {
	if RedactArguments(nil) != nil {
		t.Error("nil input should stay nil")
	}
}
