package scoring

import (
	"strings"
	"time"
)

// FarFutureDays is returned for deadlines that are absent, rolling, or unparseable.
// An unreadable deadline is never treated as already expired.
const FarFutureDays = 999

// deadlineFormats are tried in order; the first successful parse wins.
var deadlineFormats = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
	"01/02/2006",
	"January 2 2006",
}

// DaysUntilDeadline converts a free-text deadline into days remaining from now.
// Rolling or ongoing intakes and unparseable text return FarFutureDays; past
// deadlines are floored to zero.
func DaysUntilDeadline(text string) int {
	return daysUntilDeadlineAt(text, time.Now())
}

func daysUntilDeadlineAt(text string, now time.Time) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "—" {
		return FarFutureDays
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "rolling") || strings.Contains(lower, "ongoing") {
		return FarFutureDays
	}

	for _, format := range deadlineFormats {
		parsed, err := time.Parse(format, trimmed)
		if err != nil {
			continue
		}
		days := int(parsed.Sub(now).Hours() / 24)
		if days < 0 {
			return 0
		}
		return days
	}

	return FarFutureDays
}
