package scoring

import (
	"strings"
	"unicode"
)

// keywordBonusCap bounds the total bonus regardless of how many rules fire.
const keywordBonusCap = 25

// Acronym tokens longer than this are treated as shouting, not acronyms.
const maxAcronymLen = 6

// Three-word name windows must exceed this length to count as distinctive.
const minWindowLen = 12

// domainPhrases are distinctive program phrases worth a bonus when they appear in
// both the program name and the user's text.
var domainPhrases = []string{
	"climate smart",
	"salmon restoration",
	"watershed security",
	"habitat conservation",
	"nature smart",
	"community forest",
}

// KeywordBonus estimates whether the user's free-text description already references
// a specific program or funder by name, returning a bonus in [0, 25]. This is a
// heuristic signal, not semantic matching: false negatives are acceptable, false
// positives must stay rare.
func KeywordBonus(userText, programName, funderName string) int {
	if strings.TrimSpace(userText) == "" {
		return 0
	}

	text := strings.ToLower(userText)
	bonus := 0

	// Acronym match: a short all-uppercase token of the program name, first match only.
	for _, token := range strings.Fields(programName) {
		trimmed := strings.Trim(token, "()[],.:;-")
		if len(trimmed) < 2 || len(trimmed) > maxAcronymLen {
			continue
		}
		if !isAllUpper(trimmed) {
			continue
		}
		if strings.Contains(text, strings.ToLower(trimmed)) {
			bonus += 15
			break
		}
	}

	// Distinctive-phrase match: any 3-word sliding window of the program name,
	// first match only. Short windows are too generic to count.
	words := strings.Fields(programName)
	for i := 0; i+3 <= len(words); i++ {
		window := strings.Join(words[i:i+3], " ")
		if len(window) <= minWindowLen {
			continue
		}
		if strings.Contains(text, strings.ToLower(window)) {
			bonus += 12
			break
		}
	}

	// Curated domain phrases present in both the program name and the user's text.
	nameLower := strings.ToLower(programName)
	for _, phrase := range domainPhrases {
		if strings.Contains(nameLower, phrase) && strings.Contains(text, phrase) {
			bonus += 8
		}
	}

	// Funder mention.
	if len(funderName) > 3 && strings.Contains(text, strings.ToLower(funderName)) {
		bonus += 7
	}

	if bonus > keywordBonusCap {
		bonus = keywordBonusCap
	}
	return bonus
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
