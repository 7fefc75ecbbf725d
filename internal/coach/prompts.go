package coach

import (
	"fmt"
	"strings"

	"github.com/ibam-edu/actioncoach/internal/models"
)

// MaxCoachingPrompts caps how many prompts one coaching pass returns.
const MaxCoachingPrompts = 3

// Quality threshold below which a dimension earns a score-driven prompt.
const promptThreshold = 6

// CoachingPrompts selects up to MaxCoachingPrompts contextual prompts for an
// action. Score-driven prompts take precedence over the tier's generic
// prompts: a weak specificity score prepends its prompt, weak time-bound and
// measurability scores append theirs, then the list is truncated.
func CoachingPrompts(actionText string, sessionNumber int, score models.ActionQualityScore) []string {
	_ = actionText
	level := LevelFor(sessionNumber)

	prompts := make([]string, 0, len(level.CoachPrompts)+3)
	prompts = append(prompts, level.CoachPrompts...)

	if score.Specific < promptThreshold {
		prompts = append([]string{"Let's make this more specific. What exactly will you do?"}, prompts...)
	}
	if score.Timebound < promptThreshold {
		prompts = append(prompts, "When exactly will you complete this? Be specific about the day and time.")
	}
	if score.Measurable < promptThreshold && sessionNumber >= 5 {
		prompts = append(prompts, "How will you know if this action was successful? What will you measure?")
	}

	if len(prompts) > MaxCoachingPrompts {
		prompts = prompts[:MaxCoachingPrompts]
	}
	return prompts
}

// CelebrationMessage builds the congratulatory message for a scored action.
// previousScore <= 0 means no prior score is known and the improvement clause
// is skipped. At the final session a high enough overall score replaces the
// whole message with the terminal mastery message.
func CelebrationMessage(sessionNumber int, score models.ActionQualityScore, previousScore int) string {
	level := LevelFor(sessionNumber)
	message := level.Celebration

	if previousScore > 0 && score.Overall > previousScore {
		improvement := score.Overall - previousScore
		message += fmt.Sprintf(" Your action quality improved by %d points - you're getting better at this!", improvement)
	}

	if score.Overall >= 8 {
		message += " 🏆 This is a high-quality action that will drive real results!"
	}

	if sessionNumber == FinalSession && score.Overall >= 7 {
		message = "🎓 Congratulations! You've mastered the art of SMART actions. You're now equipped to create actions that multiply your impact through others. Well done!"
	}

	return message
}

// Reflection question banks keyed by action outcome, offered when a student
// reports back on a previous commitment.
var (
	reflectionCompleted = []string{
		"What did you discover from completing this action?",
		"How was the result different than you expected?",
		"What capability did you develop through this action?",
		"How can this win help you achieve bigger goals?",
		"What would you do even better next time?",
		"Who else could benefit from learning about this success?",
	}

	reflectionIncomplete = []string{
		"What did you learn from this experience?",
		"How is this different than you expected?",
		"What would you do differently next time?",
		"What capability do you need to develop?",
		"What support do you need to win next time?",
		"How can this learning help you with future actions?",
	}
)

// ReflectionQuestions returns the reflection bank for a completed or
// incomplete action.
func ReflectionQuestions(completed bool) []string {
	if completed {
		return reflectionCompleted
	}
	return reflectionIncomplete
}

// MicroCelebrationTrigger names a small engagement milestone.
type MicroCelebrationTrigger string

const (
	TriggerFirstAction        MicroCelebrationTrigger = "first_action"
	TriggerQualityImprovement MicroCelebrationTrigger = "quality_improvement"
	TriggerThreeDayStreak     MicroCelebrationTrigger = "three_day_streak"
	TriggerAccountabilityUsed MicroCelebrationTrigger = "accountability_used"
	TriggerTaughtSomeone      MicroCelebrationTrigger = "taught_someone"
	TriggerSystemCreated      MicroCelebrationTrigger = "system_created"
	TriggerTenXThinking       MicroCelebrationTrigger = "ten_x_thinking"
)

var microCelebrations = map[MicroCelebrationTrigger]string{
	TriggerFirstAction:        "🎉 First action created! Every journey starts with a single step.",
	TriggerQualityImprovement: "📈 Your actions are getting more specific! Quality over quantity wins.",
	TriggerThreeDayStreak:     "🔥 3-day completion streak! You're building unstoppable momentum.",
	TriggerAccountabilityUsed: "🤝 You're using accountability! This dramatically increases success rates.",
	TriggerTaughtSomeone:      "👨‍🏫 You taught someone else! When you teach, you learn twice.",
	TriggerSystemCreated:      "⚙️ You've created a repeatable system! This is how you scale impact.",
	TriggerTenXThinking:       "🚀 This action shows 10x thinking! You're not just improving, you're transforming.",
}

// MicroCelebration returns the message for an engagement milestone, or false
// when the trigger is unknown.
func MicroCelebration(trigger MicroCelebrationTrigger) (string, bool) {
	msg, ok := microCelebrations[trigger]
	return msg, ok
}

// MicroCelebrationsFor derives which engagement milestones a newly applied
// action record unlocks, given the pattern aggregate after the update.
func MicroCelebrationsFor(pattern *models.UserActionPattern, rec models.ActionRecord) []string {
	if pattern == nil {
		return nil
	}
	var out []string
	if len(pattern.QualityProgression) == 1 {
		out = append(out, microCelebrations[TriggerFirstAction])
	}
	if n := len(pattern.QualityProgression); n >= 2 && pattern.QualityProgression[n-1] > pattern.QualityProgression[n-2] {
		out = append(out, microCelebrations[TriggerQualityImprovement])
	}
	if pattern.CompletionStreak == 3 {
		out = append(out, microCelebrations[TriggerThreeDayStreak])
	}
	if rec.Score.Accountability >= accountabilityHit {
		out = append(out, microCelebrations[TriggerAccountabilityUsed])
	}
	if rec.SessionNumber >= 17 {
		text := strings.ToLower(rec.ActionText)
		if strings.Contains(text, "teach") || strings.Contains(text, "train") {
			out = append(out, microCelebrations[TriggerTaughtSomeone])
		}
	}
	return out
}
