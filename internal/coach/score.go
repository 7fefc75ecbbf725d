package coach

import (
	"math"
	"strings"

	"github.com/ibam-edu/actioncoach/internal/models"
)

// Keyword tables for the quality rubric. Matching is plain substring
// containment over the lower-cased action text: no stemming, no negation
// handling. "I will NOT call anyone" still counts as specific.
var (
	specificKeywords = []string{"will", "by", "complete", "finish", "create", "call", "meet", "write"}

	measurableKeywords = []string{"complete", "finish", "reach", "achieve", "deliver"}

	timeKeywords = []string{
		"today", "tomorrow",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"week", "day", "by", "before", "am", "pm",
	}

	accountabilityKeywords = []string{"tell", "share", "report", "update", "accountability"}
)

// Sub-score values. Accountability carries a much smaller bad-case penalty
// than the other dimensions: it is advisory, not gating.
const (
	specificHit        = 8
	specificMiss       = 3
	measurableHit      = 8
	measurableMiss     = 4
	timeboundHit       = 9
	timeboundMiss      = 2
	accountabilityHit  = 7
	accountabilityMiss = 5
)

// ScoreAction scores a free-text action commitment against the four-dimension
// quality rubric and emits improvement suggestions. It is a pure function:
// identical inputs always yield identical scores. Empty or malformed text is
// scored low rather than rejected. The patterns snapshot is accepted for
// future use in scoring math but does not currently affect the sub-scores.
func ScoreAction(actionText string, sessionNumber int, patterns *models.PatternSnapshot) models.ActionQualityScore {
	_ = patterns
	text := strings.ToLower(actionText)
	var suggestions []string

	hasSpecific := containsAny(text, specificKeywords)
	specific := specificMiss
	if hasSpecific {
		specific = specificHit
	} else {
		suggestions = append(suggestions, "Make your action more specific. Use words like 'will complete', 'will call', or 'will create'.")
	}

	hasMeasurable := containsDigit(text) || containsAny(text, measurableKeywords)
	measurable := measurableMiss
	if hasMeasurable {
		measurable = measurableHit
	} else {
		suggestions = append(suggestions, "Add a measurable element. How many? How much? What specific outcome?")
	}

	hasTime := containsAny(text, timeKeywords)
	timebound := timeboundMiss
	if hasTime {
		timebound = timeboundHit
	} else {
		suggestions = append(suggestions, "When exactly will you do this? Add a specific day and time.")
	}

	accountability := accountabilityMiss
	if containsAny(text, accountabilityKeywords) {
		accountability = accountabilityHit
	}

	// Tier-aware suggestions: higher tiers expect dimensions the text has
	// not yet satisfied.
	if sessionNumber >= 5 && !hasMeasurable {
		suggestions = append(suggestions, "At this stage, focus on measurable outcomes. What specific result will you achieve?")
	}
	if sessionNumber >= 11 && len(suggestions) > 2 {
		suggestions = append(suggestions, "You've created great actions before. What patterns made those successful?")
	}
	if sessionNumber >= 17 && !strings.Contains(text, "teach") && !strings.Contains(text, "share") {
		suggestions = append(suggestions, "Consider adding a multiplication element: Who can you teach or share this with?")
	}

	overall := int(math.Round(float64(specific+measurable+timebound+accountability) / 4))

	return models.ActionQualityScore{
		Overall:        overall,
		Specific:       specific,
		Measurable:     measurable,
		Timebound:      timebound,
		Accountability: accountability,
		Suggestions:    suggestions,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsDigit(text string) bool {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
