package dispatch

import (
	"fmt"

	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/protocol"
	"github.com/applebridge/osascript-mcp-server/internal/script"
)

// buildOperation binds tool arguments into the catalog entry's operation
// template. Target segments are always required; clauses bound to absent
// arguments become null and are dropped by the composer unless marked
// required.
func buildOperation(appName string, cfg catalog.ToolConfig, args map[string]any) (script.Operation, error) {
	op := script.Operation{
		Verb:     script.Verb(cfg.Verb),
		App:      appName,
		Class:    cfg.Class,
		Property: cfg.Property,
		Command:  cfg.Command,
	}

	for _, seg := range cfg.Target {
		raw, err := segmentValue(seg, args)
		if err != nil {
			return script.Operation{}, err
		}
		op.Target = append(op.Target, script.Segment{
			Class: seg.Class,
			Value: script.Cast(raw, seg.Hint),
		})
	}

	for _, clause := range cfg.Clauses {
		value, err := clauseValue(clause, args)
		if err != nil {
			return script.Operation{}, err
		}
		op.Clauses = append(op.Clauses, script.Clause{
			Keyword: clause.Keyword,
			Value:   value,
		})
	}
	return op, nil
}

func segmentValue(seg catalog.SegmentConfig, args map[string]any) (any, error) {
	if seg.Literal != "" {
		return seg.Literal, nil
	}
	if seg.Arg == "" {
		// Property-style segment: the class alone addresses the object.
		return nil, nil
	}
	raw, ok := args[seg.Arg]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: required argument %q is missing", protocol.ErrValidation, seg.Arg)
	}
	switch raw.(type) {
	case string, float64, int, int64:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: argument %q must be a string or number, got %T", protocol.ErrValidation, seg.Arg, raw)
	}
}

func clauseValue(clause catalog.ClauseConfig, args map[string]any) (script.TypedValue, error) {
	if clause.Literal != "" {
		return script.Cast(clause.Literal, clause.Hint), nil
	}
	raw, ok := args[clause.Arg]
	if !ok || raw == nil {
		if clause.Required {
			return script.TypedValue{}, fmt.Errorf("%w: required argument %q is missing", protocol.ErrValidation, clause.Arg)
		}
		// Absent optional clause: dropped entirely unless the hint names
		// the missing value placeholder.
		return script.Cast(nil, clause.Hint), nil
	}
	return script.Cast(raw, clause.Hint), nil
}
