package templates

import (
	"strings"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// substantialWordCount is the minimum word count for a free-text response to earn
// its question's weight.
const substantialWordCount = 5

// defaultItemWeeks is assumed for checklist items whose time estimate cannot be parsed.
const defaultItemWeeks = 1.0

// ReadinessScore computes the 0-100 application readiness percentage: the weight of
// substantially-answered questions over the total declared weight of every question
// in the template. A template with zero total weight scores zero.
func ReadinessScore(template *types.FundingTemplate, responses map[string]any) float64 {
	totalWeight := 0.0
	earnedWeight := 0.0

	for _, question := range template.Questions {
		weight := question.Weight()
		totalWeight += weight

		response, answered := responses[question.ID]
		if answered && isSubstantial(response) {
			earnedWeight += weight
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return earnedWeight / totalWeight * 100
}

// isSubstantial reports whether a response earns its question's weight: free text
// needs at least five words; anything else just needs to be truthy.
func isSubstantial(response any) bool {
	switch v := response.(type) {
	case string:
		return len(strings.Fields(v)) >= substantialWordCount
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case nil:
		return false
	default:
		return true
	}
}

// EstimateWeeksRemaining sums the parsed time estimates of every checklist item not
// yet completed, across all three buckets. Malformed estimates degrade to the
// one-week default; the function never errors.
func EstimateWeeksRemaining(checklist *types.Checklist, completedItems []string) float64 {
	completed := make(map[string]bool, len(completedItems))
	for _, item := range completedItems {
		completed[item] = true
	}

	remaining := 0.0
	for _, item := range checklist.Items() {
		if completed[item.Item] {
			continue
		}
		remaining += parseTimeEstimate(item.TimeEstimate)
	}
	return remaining
}

// parseTimeEstimate converts a free-text time estimate to weeks. A hyphenated week
// range averages its bounds, days divide by seven, months multiply by four, and
// anything unreadable defaults to one week.
func parseTimeEstimate(estimate string) float64 {
	text := strings.ToLower(estimate)

	if strings.Contains(text, "-") && strings.Contains(text, "week") {
		parts := strings.SplitN(text, "-", 2)
		low, okLow := toFloat(strings.TrimSpace(parts[0]))
		highFields := strings.Fields(strings.TrimSpace(parts[1]))
		if okLow && len(highFields) > 0 {
			if high, okHigh := toFloat(highFields[0]); okHigh {
				return (low + high) / 2
			}
		}
		return defaultItemWeeks
	}

	if strings.Contains(text, "week") {
		if n, ok := extractNumber(text); ok {
			return n
		}
		return defaultItemWeeks
	}

	if strings.Contains(text, "day") {
		if n, ok := extractNumber(text); ok {
			return n / 7
		}
		return 0.5
	}

	if strings.Contains(text, "month") {
		if n, ok := extractNumber(text); ok {
			return n * 4
		}
		return 4
	}

	return defaultItemWeeks
}

// extractNumber pulls the digits (and decimal point) out of a string and parses them.
func extractNumber(text string) (float64, bool) {
	var sb strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	return toFloat(sb.String())
}
