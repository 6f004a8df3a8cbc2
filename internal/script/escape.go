package script

import "strings"

// Escape rewrites value for embedding inside a double-quoted AppleScript
// literal. Backslashes are doubled first; otherwise the backslashes inserted
// for quotes and newlines would be escaped again.
func Escape(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	value = strings.ReplaceAll(value, "\r", `\r`)
	return value
}

// Quote returns value escaped and wrapped in double quotes.
func Quote(value string) string {
	return `"` + Escape(value) + `"`
}
