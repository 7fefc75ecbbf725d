package coach

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/ibam-edu/actioncoach/internal/models"
)

func TestScoreActionHighQuality(t *testing.T) {
	score := ScoreAction("I will call 3 potential clients by Friday at 2pm and share results with John", 5, nil)

	if score.Specific != specificHit {
		t.Errorf("Specific = %d, want %d", score.Specific, specificHit)
	}
	if score.Measurable != measurableHit {
		t.Errorf("Measurable = %d, want %d", score.Measurable, measurableHit)
	}
	if score.Timebound != timeboundHit {
		t.Errorf("Timebound = %d, want %d", score.Timebound, timeboundHit)
	}
	if score.Accountability != accountabilityHit {
		t.Errorf("Accountability = %d, want %d", score.Accountability, accountabilityHit)
	}
	if score.Overall != 8 {
		t.Errorf("Overall = %d, want 8", score.Overall)
	}
	for _, s := range score.Suggestions {
		if strings.Contains(s, "more specific") {
			t.Errorf("high-quality action should not carry a specificity suggestion, got %q", s)
		}
	}
}

func TestScoreActionLowQuality(t *testing.T) {
	score := ScoreAction("pray more", 5, nil)

	if score.Specific != specificMiss {
		t.Errorf("Specific = %d, want %d", score.Specific, specificMiss)
	}
	if score.Timebound != timeboundMiss {
		t.Errorf("Timebound = %d, want %d", score.Timebound, timeboundMiss)
	}
	if score.Overall > 4 {
		t.Errorf("Overall = %d, want <= 4", score.Overall)
	}

	var hasSpecific, hasTime bool
	for _, s := range score.Suggestions {
		if strings.Contains(s, "more specific") {
			hasSpecific = true
		}
		if strings.Contains(s, "specific day and time") {
			hasTime = true
		}
	}
	if !hasSpecific {
		t.Error("missing specificity suggestion for vague action")
	}
	if !hasTime {
		t.Error("missing time-bound suggestion for vague action")
	}
}

func TestScoreActionSpecificityGate(t *testing.T) {
	if got := ScoreAction("I will call 3 clients by Friday at 2pm", 5, nil).Specific; got != specificHit {
		t.Errorf("Specific = %d, want %d", got, specificHit)
	}
	if got := ScoreAction("pray more", 5, nil).Specific; got != specificMiss {
		t.Errorf("Specific = %d, want %d", got, specificMiss)
	}
}

func TestScoreActionOverallIsRoundedMean(t *testing.T) {
	texts := []string{
		"pray more",
		"I will call 3 potential clients by Friday at 2pm and share results with John",
		"finish the report",
		"tell my mentor about progress tomorrow",
		"",
	}
	for _, text := range texts {
		for _, session := range []int{1, 5, 11, 17, 22} {
			score := ScoreAction(text, session, nil)
			mean := float64(score.Specific+score.Measurable+score.Timebound+score.Accountability) / 4
			want := int(math.Round(mean))
			if score.Overall != want {
				t.Errorf("ScoreAction(%q, %d).Overall = %d, want round(%v) = %d", text, session, score.Overall, mean, want)
			}
		}
	}
}

func TestScoreActionIdempotent(t *testing.T) {
	a := ScoreAction("I will write 2 pages by Tuesday", 8, nil)
	b := ScoreAction("I will write 2 pages by Tuesday", 8, nil)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("scorer is not idempotent: %+v vs %+v", a, b)
	}
}

func TestScoreActionEmptyText(t *testing.T) {
	// Empty text is scored low, never rejected.
	score := ScoreAction("", 1, nil)
	if score.Specific != specificMiss || score.Measurable != measurableMiss || score.Timebound != timeboundMiss {
		t.Errorf("empty text sub-scores = %+v, want all misses", score)
	}
	if len(score.Suggestions) < 3 {
		t.Errorf("empty text should collect all base suggestions, got %v", score.Suggestions)
	}
}

func TestScoreActionDigitsSatisfyMeasurable(t *testing.T) {
	score := ScoreAction("I will call 12 people", 1, nil)
	if score.Measurable != measurableHit {
		t.Errorf("Measurable = %d, want %d for text containing digits", score.Measurable, measurableHit)
	}
}

func TestScoreActionTierAwareSuggestions(t *testing.T) {
	// Session >= 5 without a measurable element adds the stage-specific
	// measurability suggestion on top of the base one.
	score := ScoreAction("talk to people", 5, nil)
	count := 0
	for _, s := range score.Suggestions {
		if strings.Contains(s, "measurable") || strings.Contains(s, "specific result") {
			count++
		}
	}
	if count < 2 {
		t.Errorf("session 5 unmeasurable action should carry two measurability suggestions, got %v", score.Suggestions)
	}

	// Session >= 17 without teach/share vocabulary adds the multiplication
	// suggestion even for otherwise strong actions.
	score = ScoreAction("I will call 3 clients by Friday at 2pm", 17, nil)
	found := false
	for _, s := range score.Suggestions {
		if strings.Contains(s, "multiplication") {
			found = true
		}
	}
	if !found {
		t.Errorf("session 17 action without teach/share should get a multiplication suggestion, got %v", score.Suggestions)
	}

	// The same action with a teaching element does not.
	score = ScoreAction("I will call 3 clients by Friday at 2pm and teach Maria the script", 17, nil)
	for _, s := range score.Suggestions {
		if strings.Contains(s, "multiplication") {
			t.Errorf("teaching action should not get a multiplication suggestion, got %v", score.Suggestions)
		}
	}
}

func TestScoreActionPatternSnapshotIgnoredInMath(t *testing.T) {
	// The snapshot is accepted but does not currently alter sub-scores.
	without := ScoreAction("I will write 2 pages by Tuesday", 8, nil)
	with := ScoreAction("I will write 2 pages by Tuesday", 8, &models.PatternSnapshot{PreviousScore: 9, CompletionStreak: 4})
	if !reflect.DeepEqual(without, with) {
		t.Errorf("pattern snapshot changed scoring: %+v vs %+v", without, with)
	}
}
