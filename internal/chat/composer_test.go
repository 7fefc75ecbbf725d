package chat

import (
	"strings"
	"testing"

	"github.com/ibam-edu/actioncoach/internal/models"
)

func testSession() *models.SessionContentContext {
	return &models.SessionContentContext{
		ModuleID:  2,
		SessionID: 6,
		Title:     "Serving Customers with Excellence",
		Content: &models.SessionContent{
			Reading: "A business example from Nairobi shows how honest pricing built a loyal customer base. " +
				"The second story follows a carpenter who refused bribes and still grew his shop.",
			KeyPrinciples: []string{
				"Serve customers as an act of worship",
				"Price fairly even when competitors do not",
			},
			Objectives: []string{"Identify one customer you can serve better this week"},
			CaseStudies: []string{
				"Maria's bakery doubled its repeat customers after she started honoring every quoted price.",
			},
			Scripture: &models.ScriptureContent{
				Reference: "Colossians 3:23",
				Text:      "Whatever you do, work at it with all your heart, as working for the Lord.",
			},
		},
	}
}

func TestRespondSetsIntent(t *testing.T) {
	c := NewComposer()
	resp := c.Respond("hi", nil)
	if resp.Intent != string(IntentGreeting) {
		t.Errorf("Respond intent = %q, want %q", resp.Intent, IntentGreeting)
	}
	if resp.Answer == "" {
		t.Error("Respond returned an empty answer")
	}
}

func TestRespondGreetingMentionsSession(t *testing.T) {
	c := NewComposer()
	session := testSession()
	resp := c.Respond("hello", session)
	if !strings.Contains(resp.Answer, session.Title) {
		t.Errorf("greeting with session should mention the session title, got %q", resp.Answer)
	}
	if resp.Source != models.SourceFallback {
		t.Errorf("greeting source = %q, want %q", resp.Source, models.SourceFallback)
	}
}

func TestRespondEthicsBribe(t *testing.T) {
	c := NewComposer()
	resp := c.Respond("Should I bribe an official even though God is watching?", nil)
	if resp.Intent != string(IntentEthics) {
		t.Fatalf("intent = %q, want %q", resp.Intent, IntentEthics)
	}
	if !strings.Contains(resp.Answer, "never acceptable") {
		t.Errorf("bribe answer should take a clear position, got %q", resp.Answer)
	}
	found := false
	for _, ref := range resp.ScriptureReferences {
		if strings.Contains(ref, "Proverbs 16:8") {
			found = true
		}
	}
	if !found {
		t.Errorf("bribe answer should cite Proverbs 16:8, got %v", resp.ScriptureReferences)
	}
}

func TestRespondWealthGodServeMe(t *testing.T) {
	c := NewComposer()
	resp := c.Respond("Will this work if I'm hoping that God will serve me?", nil)
	if resp.Intent != string(IntentWealth) {
		t.Fatalf("intent = %q, want %q", resp.Intent, IntentWealth)
	}
	if !strings.Contains(resp.Answer, "Matthew 6:24") {
		t.Errorf("god-serve-me answer should quote Matthew 6:24, got %q", resp.Answer)
	}
}

func TestRespondCaseStudyUsesSessionContent(t *testing.T) {
	c := NewComposer()
	session := testSession()
	resp := c.Respond("Tell me about the case study in this session", session)
	if resp.Intent != string(IntentSessionContent) {
		t.Fatalf("intent = %q, want %q", resp.Intent, IntentSessionContent)
	}
	if !strings.Contains(resp.Answer, "Maria's bakery") {
		t.Errorf("case study answer should include the session's case study, got %q", resp.Answer)
	}
	if resp.Source != models.SourceAI {
		t.Errorf("content-derived answer source = %q, want %q", resp.Source, models.SourceAI)
	}
}

func TestRespondCaseStudyMinesReading(t *testing.T) {
	c := NewComposer()
	session := testSession()
	session.Content.CaseStudies = nil
	resp := c.Respond("Any case studies in this session?", session)
	if !strings.Contains(resp.Answer, "Nairobi") {
		t.Errorf("without structured case studies the reading should be mined, got %q", resp.Answer)
	}
}

func TestRespondCaseStudyFallsBack(t *testing.T) {
	c := NewComposer()
	session := testSession()
	session.Content.CaseStudies = nil
	session.Content.Reading = "Plain teaching text with nothing illustrative in it."
	resp := c.Respond("Any case studies in this session?", session)
	if resp.Source != models.SourceFallback {
		t.Errorf("source = %q, want %q", resp.Source, models.SourceFallback)
	}
	if !strings.Contains(resp.Answer, session.Title) {
		t.Errorf("fallback answer should still reference the session title, got %q", resp.Answer)
	}
}

func TestRespondScriptureFromSession(t *testing.T) {
	c := NewComposer()
	session := testSession()
	resp := c.Respond("Which scripture verse is in this session?", session)
	if len(resp.ScriptureReferences) != 1 || resp.ScriptureReferences[0] != "Colossians 3:23" {
		t.Errorf("scripture refs = %v, want the session's reference", resp.ScriptureReferences)
	}
	if resp.Source != models.SourceAI {
		t.Errorf("source = %q, want %q", resp.Source, models.SourceAI)
	}
}

func TestRespondScriptureWithoutSessionScripture(t *testing.T) {
	c := NewComposer()
	session := testSession()
	session.Content.Scripture = nil
	resp := c.Respond("Which scripture verse is in this session?", session)
	if len(resp.ScriptureReferences) == 0 {
		t.Fatal("expected default scripture references")
	}
	if resp.Source != models.SourceFallback {
		t.Errorf("source = %q, want %q", resp.Source, models.SourceFallback)
	}
}

func TestRespondCourseWhatIsIBAM(t *testing.T) {
	c := NewComposer()
	resp := c.Respond("What is IBAM?", nil)
	if resp.Intent != string(IntentCourse) {
		t.Fatalf("intent = %q, want %q", resp.Intent, IntentCourse)
	}
	if !strings.Contains(resp.Answer, "International Business and Ministry") {
		t.Errorf("answer should expand the IBAM acronym, got %q", resp.Answer)
	}
}

func TestRespondTerminologyGeneralListsStructure(t *testing.T) {
	c := NewComposer()
	resp := c.Respond("Explain the session structure", nil)
	if resp.Intent != string(IntentTerminology) {
		t.Fatalf("intent = %q, want %q", resp.Intent, IntentTerminology)
	}
	for _, part := range []string{"Looking Back", "Looking Up", "Main Content", "Looking Forward"} {
		if !strings.Contains(resp.Answer, part) {
			t.Errorf("answer missing session part %q", part)
		}
	}
	if !strings.Contains(resp.Answer, "Review previous commitments") {
		t.Errorf("answer should describe each part, got %q", resp.Answer)
	}
}

func TestRespondDefaultEchoesQuestion(t *testing.T) {
	c := NewComposer()
	question := "Tell me something interesting"
	resp := c.Respond(question, nil)
	if resp.Intent != string(IntentFallback) {
		t.Fatalf("intent = %q, want %q", resp.Intent, IntentFallback)
	}
	if !strings.Contains(resp.Answer, question) {
		t.Errorf("default answer should echo the question, got %q", resp.Answer)
	}
	if len(resp.FollowUpQuestions) == 0 {
		t.Error("default answer should offer follow-up questions")
	}
}

func TestRespondNeverEmpty(t *testing.T) {
	c := NewComposer()
	questions := []string{
		"", "hi", "Who are you?", "Will God make me rich?", "What does looking up mean?",
		"What are the key principles?", "What is the ultimate goal of this course?",
		"Is it wrong to cheat?", "Does God care about business?", "Where is the planner?",
		"How do I improve my marketing?", "xyzzy",
	}
	for _, q := range questions {
		for _, session := range []*models.SessionContentContext{nil, testSession()} {
			resp := c.Respond(q, session)
			if resp.Answer == "" {
				t.Errorf("Respond(%q, session=%v) returned an empty answer", q, session != nil)
			}
			if resp.Source != models.SourceAI && resp.Source != models.SourceFallback {
				t.Errorf("Respond(%q) source = %q", q, resp.Source)
			}
		}
	}
}
