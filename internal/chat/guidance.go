package chat

import (
	"fmt"

	"github.com/ibam-edu/actioncoach/internal/knowledge"
	"github.com/ibam-edu/actioncoach/internal/models"
)

// SessionGuidance bundles the static coaching knowledge that applies to one
// session: business terms its reading mentions, content themes, the
// discovery question bank plus questions derived from the session's own key
// principles, protective guidance against common mistakes, and excellence
// prompts for action steps.
type SessionGuidance struct {
	SessionTitle         string                         `json:"session_title,omitempty"`
	KeyPrinciples        []string                       `json:"key_principles,omitempty"`
	ApplicableTerms      map[string]string              `json:"applicable_terms,omitempty"`
	DiscoveryQuestions   map[string]map[string][]string `json:"discovery_questions"`
	SessionQuestions     []string                       `json:"session_questions,omitempty"`
	Themes               []string                       `json:"themes,omitempty"`
	CommonMistakes       map[string]knowledge.Mistake   `json:"common_mistakes"`
	ExcellencePrompts    map[string]string              `json:"excellence_prompts"`
	ScriptureReference   string                         `json:"scripture_reference,omitempty"`
	ScriptureApplication string                         `json:"scripture_application,omitempty"`
}

// GuidanceFor assembles the coaching guidance for a session. The general
// knowledge tables are always included; the session-derived fields are
// filled only from whatever structured content is present. A nil session
// yields the general tables alone.
func GuidanceFor(session *models.SessionContentContext) SessionGuidance {
	guidance := SessionGuidance{
		DiscoveryQuestions: knowledge.DiscoveryQuestions,
		CommonMistakes:     knowledge.CommonMistakes,
		ExcellencePrompts:  knowledge.ExcellencePrompts,
	}
	if session == nil {
		return guidance
	}
	guidance.SessionTitle = session.Title
	if !session.HasContent() {
		return guidance
	}

	content := session.Content
	guidance.KeyPrinciples = content.KeyPrinciples
	guidance.Themes = ExtractThemes(session.Title, content)
	if content.Reading != "" {
		if terms := knowledge.TermsIn(content.Reading); len(terms) > 0 {
			guidance.ApplicableTerms = terms
		}
	}
	for _, principle := range content.KeyPrinciples {
		guidance.SessionQuestions = append(guidance.SessionQuestions,
			fmt.Sprintf("How does %q apply to your current business situation?", principle))
	}
	if content.Scripture != nil {
		guidance.ScriptureReference = content.Scripture.Reference
		guidance.ScriptureApplication = knowledge.ApplicationFor(content.Scripture.Reference)
	}
	return guidance
}
