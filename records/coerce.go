package records

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Coercion helpers. Each accepts any shape an author could plausibly write
// into a frontmatter field and returns the strict typed value, defaulting
// rather than failing on junk.

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return false
	}
}

// asNumber coerces numeric-looking input (number or string) to a finite
// float. Anything else, including NaN and infinities, yields nil.
func asNumber(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// asStringList coerces heterogeneous array-like input into a string slice.
//
// Plain text entries are kept as-is. Key/value entries (a common accidental
// input shape) are flattened to "key: value" strings instead of being
// discarded. A bare string becomes a one-element list. Anything else yields
// nil.
func asStringList(v any) []string {
	switch list := v.(type) {
	case string:
		if s := strings.TrimSpace(list); s != "" {
			return []string{s}
		}
		return nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			switch entry := item.(type) {
			case string:
				if s := strings.TrimSpace(entry); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := flattenPairs(entry); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		if len(list) == 0 {
			return nil
		}
		out := make([]string, len(list))
		copy(out, list)
		return out
	default:
		return nil
	}
}

func flattenPairs(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006",
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// asPriceRows coerces a list of row maps into PriceRows. Rows that are not
// maps are dropped; rows missing a label are kept only when they carry an
// amount, so a half-filled table still renders something sensible.
func asPriceRows(v any) []PriceRow {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]PriceRow, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := PriceRow{
			Label:    firstString(m, "label", "item", "name"),
			Amount:   asNumber(firstValue(m, "amount", "cost", "price")),
			Currency: asString(m["currency"]),
			Note:     firstString(m, "note", "notes"),
		}
		if row.Label == "" && row.Amount == nil {
			continue
		}
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstValue(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
