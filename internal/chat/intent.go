// Package chat implements the rule-based chat coach: an ordered-predicate
// intent classifier, a templated response composer, a best-effort session
// content miner, and per-conversation state helpers.
//
// Classification is substring keyword matching over the lower-cased input.
// There is no stemming, no tokenization, and no negation handling: "I will
// NOT bribe anyone" still matches the bribery branch, and "sin" inside
// "business" routes questions like "can I export my business plan?" to the
// theology branch before the planner rule runs. These are accepted
// limitations of the design, not bugs.
package chat

import "strings"

// Intent is one of the closed set of recognized conversational categories.
// Exactly one intent is selected per input.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentIdentity       Intent = "identity"
	IntentContentGap     Intent = "content_gap"
	IntentWealth         Intent = "wealth_motivation"
	IntentTerminology    Intent = "session_terminology"
	IntentSessionContent Intent = "session_content"
	IntentCourse         Intent = "course_info"
	IntentEthics         Intent = "business_ethics"
	IntentTheology       Intent = "theological"
	IntentPlanner        Intent = "business_planner"
	IntentPractical      Intent = "practical_business"
	IntentFallback       Intent = "fallback"
)

// Keyword tables, one per intent. Kept as data so priority or vocabulary
// changes are an edit here, not a control-flow rewrite.
var (
	greetingPhrases = []string{
		"hi", "hello", "hey",
		"good morning", "good afternoon", "good evening",
		"hi coach", "hello coach", "hey coach",
	}

	identityPhrases = []string{"who are you", "what are you"}

	contentGapKeywords = []string{
		"not mentioned", "missing from", "what about", "issues not", "gaps in",
		"not covered", "overlooked", "not addressed", "what else", "other issues",
	}

	wealthKeywords = []string{
		"make me rich", "make me wealthy", "god serve me", "will following god make me",
		"prosperity", "wealth", "rich", "money", "financial success", "get rich",
		"hoping that god will serve me", "will this work",
	}

	terminologyKeywords = []string{
		"looking back", "looking up", "looking forward",
		"session structure", "what does looking", "what is looking",
	}

	sessionContentKeywords = []string{
		"case study", "case studies", "insights", "main point", "key point", "reading", "content", "section",
		"what does this session", "what did we learn", "summary", "takeaway", "lesson", "teaching",
		"scripture", "bible verse", "principle", "guideline", "example", "story", "illustration",
		"this session", "today", "current session", "now learning", "video", "material", "curriculum",
	}

	courseKeywords = []string{
		"course", "ibam", "module", "session", "what is", "purpose", "goal",
		"how many", "ultimate goal", "main goal",
	}

	ethicsKeywords = []string{
		"bribe", "bribed", "corrupt", "cheat", "lie", "steal", "unethical", "wrong",
		"evil", "rules", "break", "bad guys", "pressure", "extort", "pay money", "ethics",
	}

	theologyKeywords = []string{
		"god", "jesus", "bible", "scripture", "sin", "salvation", "prayer", "faith", "christian",
	}

	plannerKeywords = []string{
		"business plan", "planner", "export", "save", "download", "planning tool",
	}

	practicalKeywords = []string{
		"apply", "how do i", "how does", "burger king", "job", "work", "sales", "marketing",
		"budgeting", "budget", "finance", "financial", "operations", "practical",
		"business skills", "learn about", "will i learn", "do i learn",
		"how can you assist", "help me", "assist me",
	}
)

// rule is one entry of the ordered classification cascade.
type rule struct {
	intent       Intent
	needsSession bool
	match        func(q string) bool
}

// rules is the prioritized classification table; the first matching rule
// wins. The ordering is load-bearing because the keyword sets overlap:
// business ethics must be checked before theology so "should I bribe even
// though God is watching" resolves to ethics, and greetings short-circuit
// everything else.
var rules = []rule{
	{IntentGreeting, false, isGreeting},
	{IntentIdentity, false, matcher(identityPhrases)},
	{IntentContentGap, false, matcher(contentGapKeywords)},
	{IntentWealth, false, matcher(wealthKeywords)},
	{IntentTerminology, false, matcher(terminologyKeywords)},
	{IntentSessionContent, true, matcher(sessionContentKeywords)},
	{IntentCourse, false, matcher(courseKeywords)},
	{IntentEthics, false, matcher(ethicsKeywords)},
	{IntentTheology, false, matcher(theologyKeywords)},
	{IntentPlanner, false, matcher(plannerKeywords)},
	{IntentPractical, false, matcher(practicalKeywords)},
}

// Classify selects exactly one intent for an utterance by first-match over
// the prioritized rule table. Rules that require session context are skipped
// when hasSession is false. Classification never fails: unmatched input
// falls through to IntentFallback.
func Classify(utterance string, hasSession bool) Intent {
	q := normalize(utterance)
	for _, r := range rules {
		if r.needsSession && !hasSession {
			continue
		}
		if r.match(q) {
			return r.intent
		}
	}
	return IntentFallback
}

// ContentTopic is the finer sub-classification inside IntentSessionContent.
type ContentTopic string

const (
	TopicCaseStudy  ContentTopic = "case_study"
	TopicMainPoints ContentTopic = "main_points"
	TopicReading    ContentTopic = "reading"
	TopicScripture  ContentTopic = "scripture"
	TopicPrinciples ContentTopic = "principles"
	TopicGeneral    ContentTopic = "general"
)

// contentTopicRules is the ordered sub-classification table for session
// content questions.
var contentTopicRules = []struct {
	topic    ContentTopic
	keywords []string
}{
	{TopicCaseStudy, []string{"case study", "case studies", "insights"}},
	{TopicMainPoints, []string{"main point", "key point", "summary", "takeaway"}},
	{TopicReading, []string{"reading", "content", "material"}},
	{TopicScripture, []string{"scripture", "bible verse"}},
	{TopicPrinciples, []string{"principle", "guideline", "teaching"}},
}

// ClassifyContentTopic picks the session-content sub-topic for an utterance,
// defaulting to TopicGeneral.
func ClassifyContentTopic(utterance string) ContentTopic {
	q := normalize(utterance)
	for _, r := range contentTopicRules {
		if containsAny(q, r.keywords) {
			return r.topic
		}
	}
	return TopicGeneral
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isGreeting matches only when the whole message is a greeting, optionally
// with a trailing exclamation mark. Substring matching would be wrong here:
// "hi, should I bribe someone?" must not short-circuit as a greeting.
func isGreeting(q string) bool {
	for _, g := range greetingPhrases {
		if q == g || q == g+"!" {
			return true
		}
	}
	return false
}

func matcher(keywords []string) func(string) bool {
	return func(q string) bool {
		return containsAny(q, keywords)
	}
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
