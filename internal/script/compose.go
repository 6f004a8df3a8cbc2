package script

import "strings"

// Verb identifies one of the fixed operations on the host object model.
type Verb string

const (
	VerbGet       Verb = "get"
	VerbSet       Verb = "set"
	VerbCount     Verb = "count"
	VerbMake      Verb = "make"
	VerbDelete    Verb = "delete"
	VerbDuplicate Verb = "duplicate"
	VerbExists    Verb = "exists"
	VerbMove      Verb = "move"
	VerbOpenURL   Verb = "open_url"
	VerbClose     Verb = "close"
	VerbSave      Verb = "save"
	VerbPrint     Verb = "print"
	VerbDoCommand Verb = "do_command"
	VerbActivate  Verb = "activate"
	VerbQuit      Verb = "quit"
)

// Verbs lists every composable verb.
var Verbs = []Verb{
	VerbGet, VerbSet, VerbCount, VerbMake, VerbDelete, VerbDuplicate,
	VerbExists, VerbMove, VerbOpenURL, VerbClose, VerbSave, VerbPrint,
	VerbDoCommand, VerbActivate, VerbQuit,
}

// Segment is one step of a target path: an object class plus the value
// addressing an instance of it (name, index, or reference expression).
type Segment struct {
	Class string
	Value TypedValue
}

// Clause is a named optional parameter. Null values are dropped at
// composition time, never rendered.
type Clause struct {
	Keyword string
	Value   TypedValue
}

// Operation describes one scripted action against the host application.
type Operation struct {
	// Verb selects the command shape.
	Verb Verb
	// App is the host application name.
	App string
	// Target addresses the object, innermost segment first.
	Target []Segment
	// Class is the object class for count and make.
	Class string
	// Property is the property name for get and set.
	Property string
	// Command is the raw command word for do_command (e.g. "write text").
	Command string
	// Clauses are appended in order; the order is fixed per catalog entry.
	Clauses []Clause
}

// Compose renders the operation as a complete AppleScript snippet. The
// target is addressed once by an enclosing tell block and referred to as
// "it" inside, so a path expression is never embedded twice. Composition is
// pure string assembly and never fails; bad operations fail at execution.
func Compose(op Operation) string {
	var b strings.Builder
	b.WriteString(`tell application ` + Quote(op.App) + "\n")

	indent := "\t"
	if len(op.Target) > 0 {
		b.WriteString("\ttell " + targetExpr(op.Target) + "\n")
		indent = "\t\t"
	}

	for _, line := range bodyLines(op) {
		b.WriteString(indent + line + "\n")
	}

	if len(op.Target) > 0 {
		b.WriteString("\tend tell\n")
	}
	b.WriteString("end tell")
	return b.String()
}

func bodyLines(op Operation) []string {
	switch op.Verb {
	case VerbGet:
		return []string{"return " + op.Property + " of it"}
	case VerbSet:
		value := "missing value"
		if len(op.Clauses) > 0 {
			value = op.Clauses[0].Value.Render()
		}
		return []string{"set " + op.Property + " of it to " + value}
	case VerbCount:
		return []string{"return count of " + op.Class + " of it"}
	case VerbExists:
		return []string{"return exists it"}
	case VerbMake:
		line := "make new " + op.Class
		if props := properties(op.Clauses); props != "" {
			line += " with properties {" + props + "}"
		}
		return []string{line}
	case VerbOpenURL:
		return []string{"open location" + clauseSuffix(op.Clauses)}
	case VerbDoCommand:
		return []string{op.Command + clauseSuffix(op.Clauses)}
	case VerbActivate:
		return []string{"activate"}
	case VerbQuit:
		return []string{"quit" + clauseSuffix(op.Clauses)}
	case VerbDelete, VerbDuplicate, VerbMove, VerbClose, VerbSave, VerbPrint:
		return []string{string(op.Verb) + " it" + clauseSuffix(op.Clauses)}
	default:
		return []string{string(op.Verb) + clauseSuffix(op.Clauses)}
	}
}

// targetExpr joins path segments innermost-first: tab 2 of window "Main".
func targetExpr(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch {
		case seg.Class == "":
			parts = append(parts, seg.Value.Render())
		case seg.Value.IsNull():
			// Property-style segment, e.g. "current session of window 1".
			parts = append(parts, seg.Class)
		default:
			parts = append(parts, seg.Class+" "+seg.Value.Render())
		}
	}
	return strings.Join(parts, " of ")
}

// clauseSuffix renders optional clauses in order, dropping null values.
func clauseSuffix(clauses []Clause) string {
	var b strings.Builder
	for _, clause := range clauses {
		if clause.Value.IsNull() {
			continue
		}
		b.WriteString(" ")
		if clause.Keyword != "" {
			b.WriteString(clause.Keyword + " ")
		}
		b.WriteString(clause.Value.Render())
	}
	return b.String()
}

// properties renders make-new clauses as a single aggregate record interior.
func properties(clauses []Clause) string {
	parts := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		if clause.Value.IsNull() {
			continue
		}
		parts = append(parts, clause.Keyword+":"+clause.Value.Render())
	}
	return strings.Join(parts, ", ")
}
