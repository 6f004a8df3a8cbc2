package security

import "strings"

// Terminal text and commands routinely carry credentials; keys that look
// secret are masked outright, and free-text values are truncated so logs do
// not mirror whole pasted buffers.
var sensitiveSubstrings = []string{
	"token",
	"password",
	"passwd",
	"passphrase",
	"secret",
	"credential",
	"apikey",
	"api_key",
	"auth",
	"cookie",
	"session_key",
}

const maxLoggedValueLen = 256

// RedactArguments returns a copy of arguments safe for logging.
func RedactArguments(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	redacted := make(map[string]any, len(values))
	for key, value := range values {
		if isSensitiveKey(key) {
			redacted[key] = "***"
			continue
		}
		if text, ok := value.(string); ok && len(text) > maxLoggedValueLen {
			redacted[key] = text[:maxLoggedValueLen] + "...(truncated)"
			continue
		}
		redacted[key] = value
	}
	return redacted
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveSubstrings {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
