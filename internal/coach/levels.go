// Package coach implements the progressive SMART-action coaching engine:
// a four-dimension quality rubric, session-based coaching tiers, and
// contextual prompt and celebration generation.
//
// Everything in this package is a pure function over its inputs plus
// immutable package-level tables. There is no I/O and no shared mutable
// state, so concurrent use requires no synchronization.
package coach

// Tier identifies one of the four ordered coaching tiers.
type Tier string

const (
	TierFoundation  Tier = "foundation"
	TierRefinement  Tier = "refinement"
	TierIntegration Tier = "integration"
	TierMastery     Tier = "mastery"
)

// Element is a required quality element an action should demonstrate at a
// given tier.
type Element string

const (
	ElementSpecificOutcome       Element = "specific_outcome"
	ElementTimeframe             Element = "timeframe"
	ElementMeasurableResult      Element = "measurable_result"
	ElementAccountabilityPerson  Element = "accountability_person"
	ElementBuildsOnPrevious      Element = "builds_on_previous"
	ElementMultiplicationElement Element = "multiplication_element"
)

// FinalSession is the last session of the course. The celebration generator
// emits its terminal mastery message only at this session.
const FinalSession = 22

// Level defines one coaching tier: its session range, the quality elements
// it requires, its prompt set, and its celebration message. Levels are
// statically defined and never created or mutated at runtime.
type Level struct {
	Tier             Tier
	SessionRange     [2]int
	RequiredElements []Element
	CoachPrompts     []string
	SuccessCriteria  []string
	Celebration      string
}

// levels maps each tier to its fixed definition. The session ranges
// partition the positive integers with no gaps: 1-4 foundation, 5-10
// refinement, 11-16 integration, 17+ mastery.
var levels = map[Tier]Level{
	TierFoundation: {
		Tier:         TierFoundation,
		SessionRange: [2]int{1, 4},
		RequiredElements: []Element{
			ElementSpecificOutcome,
			ElementTimeframe,
		},
		CoachPrompts: []string{
			"Let's make this more specific. What exactly will you do?",
			"When exactly will you do this? Be specific about the day and time.",
			"How will you know if you completed this action?",
		},
		SuccessCriteria: []string{
			"Action includes specific outcome",
			"Action includes exact timeframe",
			"Action is achievable in given timeframe",
		},
		Celebration: "Great! You're learning to create clear, specific actions. This is the foundation of achievement!",
	},
	TierRefinement: {
		Tier:         TierRefinement,
		SessionRange: [2]int{5, 10},
		RequiredElements: []Element{
			ElementSpecificOutcome,
			ElementTimeframe,
			ElementMeasurableResult,
			ElementAccountabilityPerson,
		},
		CoachPrompts: []string{
			"How will you measure the success of this action?",
			"What specific result do you expect to see?",
			"Who will help hold you accountable for this commitment?",
			"Is this action challenging enough to create growth?",
		},
		SuccessCriteria: []string{
			"Action includes measurable outcome",
			"Action specifies accountability person",
			"Action describes expected result",
			"Action demonstrates growth mindset",
		},
		Celebration: "Excellent! You're developing quality over quantity. Your actions now have clear success measures!",
	},
	TierIntegration: {
		Tier:         TierIntegration,
		SessionRange: [2]int{11, 16},
		RequiredElements: []Element{
			ElementSpecificOutcome,
			ElementTimeframe,
			ElementMeasurableResult,
			ElementAccountabilityPerson,
			ElementBuildsOnPrevious,
		},
		CoachPrompts: []string{
			"How does this action build on your previous successes?",
			"What pattern are you noticing in your most successful actions?",
			"How can this action create momentum for your next session?",
			"What would the extraordinary version of this action look like?",
		},
		SuccessCriteria: []string{
			"Action connects to previous wins",
			"Action demonstrates pattern recognition",
			"Action creates compound momentum",
			"Action shows strategic thinking",
		},
		Celebration: "Outstanding! You're now creating actions that build on each other. This is compound growth!",
	},
	TierMastery: {
		Tier:         TierMastery,
		SessionRange: [2]int{17, FinalSession},
		RequiredElements: []Element{
			ElementSpecificOutcome,
			ElementTimeframe,
			ElementMeasurableResult,
			ElementAccountabilityPerson,
			ElementBuildsOnPrevious,
			ElementMultiplicationElement,
		},
		CoachPrompts: []string{
			"Who can you teach this skill to?",
			"How can you make this action repeatable for others?",
			"What system could you create from this action?",
			"How does this action serve something bigger than yourself?",
		},
		SuccessCriteria: []string{
			"Action includes teaching/sharing element",
			"Action demonstrates systems thinking",
			"Action serves larger purpose",
			"Action shows leadership development",
		},
		Celebration: "Masterful! You're not just achieving - you're multiplying impact through others. This is true leadership!",
	},
}

// LevelFor returns the coaching level for a session number. The mapping is a
// monotonic step function total over all integers: non-positive session
// numbers fall into foundation, numbers beyond the course length fall into
// mastery.
func LevelFor(sessionNumber int) Level {
	switch {
	case sessionNumber <= 4:
		return levels[TierFoundation]
	case sessionNumber <= 10:
		return levels[TierRefinement]
	case sessionNumber <= 16:
		return levels[TierIntegration]
	default:
		return levels[TierMastery]
	}
}

// Levels returns the fixed tier table in session order.
func Levels() []Level {
	return []Level{
		levels[TierFoundation],
		levels[TierRefinement],
		levels[TierIntegration],
		levels[TierMastery],
	}
}
