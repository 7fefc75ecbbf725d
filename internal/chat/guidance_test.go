package chat

import (
	"strings"
	"testing"

	"github.com/ibam-edu/actioncoach/internal/models"
)

func TestGuidanceForNilSession(t *testing.T) {
	guidance := GuidanceFor(nil)

	if len(guidance.DiscoveryQuestions) == 0 {
		t.Error("guidance missing discovery question bank")
	}
	if len(guidance.CommonMistakes) == 0 {
		t.Error("guidance missing protective guidance")
	}
	if len(guidance.ExcellencePrompts) == 0 {
		t.Error("guidance missing excellence prompts")
	}
	if guidance.SessionTitle != "" || len(guidance.SessionQuestions) != 0 {
		t.Errorf("nil session should yield no session-derived fields, got %+v", guidance)
	}
}

func TestGuidanceForSession(t *testing.T) {
	session := &models.SessionContentContext{
		ModuleID:  3,
		SessionID: 12,
		Title:     "Financial Stewardship",
		Content: &models.SessionContent{
			Reading: "Steward your cash flow closely as you test your MVP with early customers.",
			KeyPrinciples: []string{
				"Steward every shilling as God's resource",
			},
			Scripture: &models.ScriptureContent{Reference: "Mark 12:31"},
		},
	}

	guidance := GuidanceFor(session)

	if guidance.SessionTitle != "Financial Stewardship" {
		t.Errorf("SessionTitle = %q", guidance.SessionTitle)
	}
	for _, want := range []string{"Cash Flow", "MVP"} {
		if _, ok := guidance.ApplicableTerms[want]; !ok {
			t.Errorf("ApplicableTerms missing %q; got %v", want, guidance.ApplicableTerms)
		}
	}
	if len(guidance.SessionQuestions) != 1 {
		t.Fatalf("SessionQuestions = %v, want one per key principle", guidance.SessionQuestions)
	}
	if !strings.Contains(guidance.SessionQuestions[0], "Steward every shilling") {
		t.Errorf("session question should quote the principle, got %q", guidance.SessionQuestions[0])
	}
	if len(guidance.Themes) != 1 || guidance.Themes[0] != "stewardship" {
		t.Errorf("Themes = %v, want [stewardship]", guidance.Themes)
	}
	if guidance.ScriptureReference != "Mark 12:31" {
		t.Errorf("ScriptureReference = %q", guidance.ScriptureReference)
	}
	if !strings.Contains(guidance.ScriptureApplication, "Customer service") {
		t.Errorf("ScriptureApplication = %q", guidance.ScriptureApplication)
	}
}

func TestGuidanceForSessionWithoutContent(t *testing.T) {
	guidance := GuidanceFor(&models.SessionContentContext{ModuleID: 1, SessionID: 1, Title: "Welcome"})

	if guidance.SessionTitle != "Welcome" {
		t.Errorf("SessionTitle = %q", guidance.SessionTitle)
	}
	if guidance.ApplicableTerms != nil || guidance.SessionQuestions != nil || guidance.ScriptureReference != "" {
		t.Errorf("content-free session should yield no content-derived fields, got %+v", guidance)
	}
	if len(guidance.CommonMistakes) == 0 {
		t.Error("guidance missing protective guidance")
	}
}
