package bonus

import (
	"encoding/json"
	"math"
)

// Normalize shapes one raw bonus record (an untyped map, as decoded
// from stored JSON) into a canonical Bonus. It returns nil for anything
// that is not a map, lacks a string target, or lacks a numeric value.
// Malformed entries are dropped rather than surfaced as errors so that
// a single corrupt item or feature never takes down the whole sheet.
//
// Source precedence: the fallback argument wins over an inline
// raw["source"], which wins over the Unknown placeholder.
func Normalize(raw any, fallback *Source) *Bonus {
	m, ok := raw.(map[string]any)
	if !ok || m == nil {
		return nil
	}

	target, ok := m["target"].(string)
	if !ok || target == "" {
		return nil
	}

	value, ok := numericValue(m["value"])
	if !ok {
		return nil
	}

	typ := TypeUntyped
	if s, ok := m["type"].(string); ok && s != "" {
		typ = s
	}

	return &Bonus{
		Target: target,
		Value:  value,
		Type:   typ,
		Source: resolveSource(m["source"], fallback),
	}
}

// numericValue accepts the integer shapes a decoded JSON document can
// carry. Fractional values truncate toward zero; bonuses are integral
// quantities in every rulebook path that produces them.
func numericValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
	}
	return 0, false
}

func resolveSource(raw any, fallback *Source) Source {
	if fallback != nil {
		src := *fallback
		if src.Label == "" {
			src.Label = UnknownLabel
		}
		return src
	}

	if m, ok := raw.(map[string]any); ok {
		src := Source{}
		if t, ok := m["type"].(string); ok {
			src.Type = SourceType(t)
		}
		if id, ok := m["id"].(string); ok {
			src.ID = id
		}
		if label, ok := m["label"].(string); ok {
			src.Label = label
		}
		if src.Label == "" {
			src.Label = UnknownLabel
		}
		return src
	}

	return Source{Label: UnknownLabel}
}
