// Package normalize coerces heterogeneous catalog field values into canonical forms.
// Catalog records arrive as loosely-typed JSON: multi-selects, scalar strings,
// numbers, and currency-like strings may all carry the same semantic value.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AsStringList normalizes a multi-select / scalar / absent field into a list of strings.
// Sequences are mapped element-wise to their string form, a scalar string becomes a
// one-element list, and anything else (nil, numbers, maps) yields an empty list.
// No input type is an error.
func AsStringList(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{}
	}
}

// ParseMoney parses a numeric or currency-like string value to a float.
// Strings are stripped of commas and dollar signs before parsing.
// The second return value is false when the amount is unknown; callers must
// treat unknown as distinct from zero.
func ParseMoney(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		cleaned := strings.ReplaceAll(v, ",", "")
		cleaned = strings.ReplaceAll(cleaned, "$", "")
		cleaned = strings.TrimSpace(cleaned)
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// HTMLToText converts rich-text HTML to plain text, collapsing whitespace.
// Falls back to the original input if parsing fails.
func HTMLToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return CleanText(doc.Text())
}

// CleanText collapses runs of whitespace into single spaces and trims the result.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
