package script

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind tags the semantic type of a casted value. Every kind renders exactly
// one literal form; only KindString renders quoted.
type Kind int

const (
	// KindNull renders nothing; null-valued clauses are omitted entirely.
	KindNull Kind = iota
	// KindBoolean renders true or false.
	KindBoolean
	// KindInteger renders an unquoted integer.
	KindInteger
	// KindFloat renders an unquoted decimal number.
	KindFloat
	// KindString renders escaped inside double quotes.
	KindString
	// KindList renders a brace-wrapped composite verbatim.
	KindList
	// KindRecord renders a brace-wrapped record verbatim.
	KindRecord
	// KindRectangle renders a brace-wrapped 4-number tuple verbatim.
	KindRectangle
	// KindPoint renders a brace-wrapped 2-number tuple verbatim.
	KindPoint
	// KindColor renders a brace-wrapped RGB tuple verbatim.
	KindColor
	// KindDate renders a date specifier verbatim.
	KindDate
	// KindReference renders an object reference expression verbatim.
	KindReference
)

// TypedValue is a casted value carrying its render strategy.
type TypedValue struct {
	kind Kind
	text string
}

// Null returns the omitted-clause value.
func Null() TypedValue { return TypedValue{kind: KindNull} }

// Bool returns a boolean value.
func Bool(v bool) TypedValue { return TypedValue{kind: KindBoolean, text: strconv.FormatBool(v)} }

// Integer returns an integer value.
func Integer(v int64) TypedValue {
	return TypedValue{kind: KindInteger, text: strconv.FormatInt(v, 10)}
}

// String returns a quoted-string value; escaping happens at render time.
func String(v string) TypedValue { return TypedValue{kind: KindString, text: v} }

// Reference returns a value rendered verbatim as an object reference.
func Reference(expr string) TypedValue {
	return TypedValue{kind: KindReference, text: expr}
}

// Kind reports the value's tag.
func (v TypedValue) Kind() Kind { return v.kind }

// IsNull reports whether the value is the omitted-clause marker.
func (v TypedValue) IsNull() bool { return v.kind == KindNull }

// Render returns the literal form for embedding in a script. Only KindString
// passes through the escaper; every other kind is unquoted by construction.
func (v TypedValue) Render() string {
	switch v.kind {
	case KindNull:
		return "missing value"
	case KindString:
		return Quote(v.text)
	default:
		return v.text
	}
}

var (
	numberPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	truthyWords    = map[string]bool{"true": true, "yes": true}
	falsyWords     = map[string]bool{"false": true, "no": true}
	compositeHints = map[string]Kind{"list": KindList, "record": KindRecord, "rectangle": KindRectangle, "point": KindPoint, "color": KindColor}
)

// Cast converts a raw wire value into a TypedValue. An empty hint runs the
// inference rules; a known hint selects the render strategy directly; any
// other hint is treated as an object class and the value renders as a
// reference expression.
func Cast(raw any, hint string) TypedValue {
	switch v := raw.(type) {
	case nil:
		// Null renders as the "missing value" placeholder only when the
		// hint names it; otherwise the clause is dropped by the composer.
		if strings.EqualFold(strings.TrimSpace(hint), "missing_value") {
			return Reference("missing value")
		}
		return Null()
	case bool:
		return Bool(v)
	case int:
		return Integer(int64(v))
	case int64:
		return Integer(v)
	case float64:
		// JSON numbers arrive as float64.
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return Integer(int64(v))
		}
		return TypedValue{kind: KindFloat, text: strconv.FormatFloat(v, 'f', -1, 64)}
	case string:
		return castString(v, hint)
	default:
		return castString(fmt.Sprint(raw), hint)
	}
}

func castString(raw, hint string) TypedValue {
	hint = strings.ToLower(strings.TrimSpace(hint))
	switch {
	case hint == "":
		return infer(raw)
	case hint == "boolean":
		lower := strings.ToLower(strings.TrimSpace(raw))
		if truthyWords[lower] {
			return Bool(true)
		}
		if falsyWords[lower] {
			return Bool(false)
		}
		// Outside {true,false,yes,no} a boolean hint falls through to a
		// plain string, not an error.
		return String(raw)
	case hint == "integer":
		if _, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return TypedValue{kind: KindInteger, text: strings.TrimSpace(raw)}
		}
		return String(raw)
	case hint == "float" || hint == "number":
		if numberPattern.MatchString(strings.TrimSpace(raw)) {
			return numberValue(strings.TrimSpace(raw))
		}
		return String(raw)
	case hint == "string" || hint == "text":
		return String(stripQuotes(raw))
	case hint == "date":
		return dateValue(raw)
	case hint == "missing_value":
		return Reference("missing value")
	case hint == "constant" || hint == "enum":
		// Host-model enumeration constants (yes, no, ask) stay unquoted.
		return Reference(strings.TrimSpace(raw))
	default:
		if kind, ok := compositeHints[hint]; ok {
			return compositeValue(raw, kind)
		}
		return referenceValue(hint, raw)
	}
}

// infer applies the hint-free casting rules in their fixed order; each rule
// shadows everything below it.
func infer(raw string) TypedValue {
	if raw == "" {
		return String("")
	}
	lower := strings.ToLower(raw)
	if truthyWords[lower] {
		return Bool(true)
	}
	if falsyWords[lower] {
		return Bool(false)
	}
	if numberPattern.MatchString(raw) {
		return numberValue(raw)
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		// Already a composite literal; interior is not parsed.
		return TypedValue{kind: KindList, text: trimmed}
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		// A numeric 4-tuple always takes the rectangle path; this
		// tie-break is fixed.
		if len(parts) == 4 && allNumeric(parts) {
			return TypedValue{kind: KindRectangle, text: "{" + strings.Join(parts, ",") + "}"}
		}
		if len(parts) >= 2 {
			return TypedValue{kind: KindList, text: "{" + strings.Join(parts, ",") + "}"}
		}
	}
	if strings.HasPrefix(raw, `date "`) || isoDatePattern.MatchString(raw) {
		return dateValue(raw)
	}
	if stripped, ok := quotedInterior(raw); ok {
		return String(stripped)
	}
	return String(raw)
}

func numberValue(raw string) TypedValue {
	if strings.Contains(raw, ".") {
		return TypedValue{kind: KindFloat, text: raw}
	}
	return TypedValue{kind: KindInteger, text: raw}
}

func dateValue(raw string) TypedValue {
	if strings.HasPrefix(raw, `date "`) {
		return TypedValue{kind: KindDate, text: raw}
	}
	return TypedValue{kind: KindDate, text: `date ` + Quote(raw)}
}

func compositeValue(raw string, kind Kind) TypedValue {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return TypedValue{kind: kind, text: trimmed}
	}
	parts := strings.Split(trimmed, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return TypedValue{kind: kind, text: "{" + strings.Join(parts, ",") + "}"}
}

// referenceValue renders class-hinted values unquoted as reference
// expressions: numeric values address by index, everything else by name.
func referenceValue(class, raw string) TypedValue {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, class+" ") {
		return Reference(trimmed)
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Reference(class + " " + trimmed)
	}
	return Reference(class + " " + Quote(stripQuotes(trimmed)))
}

func allNumeric(parts []string) bool {
	for _, part := range parts {
		if !numberPattern.MatchString(part) {
			return false
		}
	}
	return true
}

func quotedInterior(raw string) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}
	first := raw[0]
	if (first == '"' || first == '\'') && raw[len(raw)-1] == first {
		return raw[1 : len(raw)-1], true
	}
	return "", false
}

func stripQuotes(raw string) string {
	if stripped, ok := quotedInterior(raw); ok {
		return stripped
	}
	return raw
}
