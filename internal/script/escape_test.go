package script

import (
	"strings"
	"testing"
)

func TestEscape_OrderOfSubstitution(t *testing.T) {
	// Backslashes must be doubled before quotes are escaped, otherwise the
	// inserted backslashes would be escaped again.
	got := Escape(`a\"b`)
	want := `a\\\"b`
	if got != want {
		t.Errorf("Escape(%q) = %q, want %q", `a\"b`, got, want)
	}
}

func TestEscape_Newlines(t *testing.T) {
	got := Escape("line1\nline2\rline3")
	if strings.ContainsAny(got, "\n\r") {
		t.Errorf("escaped value still contains raw newline bytes: %q", got)
	}
	if got != `line1\nline2\rline3` {
		t.Errorf("Escape produced %q", got)
	}
}

func TestEscape_CannotTerminateLiteral(t *testing.T) {
	inputs := []string{
		`"`,
		`" & do shell script "rm -rf /" & "`,
		`\" still quoted`,
		"multi\nline \" with \\ everything\r",
	}
	for _, input := range inputs {
		wrapped := `"` + Escape(input) + `"`
		// Scan the wrapper: no unescaped quote may appear between the
		// boundaries, so the literal stays closed at exactly one point.
		interior := wrapped[1 : len(wrapped)-1]
		escaped := false
		for _, r := range interior {
			if escaped {
				escaped = false
				continue
			}
			if r == '\\' {
				escaped = true
				continue
			}
			if r == '"' {
				t.Errorf("unescaped quote inside wrapped literal for input %q: %q", input, wrapped)
				break
			}
		}
		if escaped {
			t.Errorf("trailing bare backslash can escape the closing quote for input %q: %q", input, wrapped)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote(`say "hi"`); got != `"say \"hi\""` {
		t.Errorf("Quote = %q", got)
	}
}
