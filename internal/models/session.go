// Package models defines session content structures for ActionCoach.
package models

// VideoContent describes a session's embedded video.
type VideoContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ScriptureContent is a session's scripture focus.
type ScriptureContent struct {
	Reference string `json:"reference"`
	Text      string `json:"text,omitempty"`
}

// SessionContent is the structured curriculum for one session. Every field
// is optional; the content miner in the chat package handles missing fields
// by falling back to text heuristics or generic templates.
type SessionContent struct {
	Reading       string            `json:"reading,omitempty"`
	Video         *VideoContent     `json:"video,omitempty"`
	Scripture     *ScriptureContent `json:"scripture,omitempty"`
	KeyPrinciples []string          `json:"key_principles,omitempty"`
	Objectives    []string          `json:"objectives,omitempty"`
	CaseStudies   []string          `json:"case_studies,omitempty"`
}

// UserProgress is the caller's progress record for one session.
type UserProgress struct {
	CompletedSections map[string]bool `json:"completed_sections,omitempty"`
	QuizScores        map[string]int  `json:"quiz_scores,omitempty"`
}

// SessionContentContext is a read-only view of the current course session,
// supplied by the content store. The coaching engine never mutates it.
type SessionContentContext struct {
	ModuleID  int             `json:"module_id"`
	SessionID int             `json:"session_id"`
	Title     string          `json:"title"`
	Content   *SessionContent `json:"content,omitempty"`
	Progress  *UserProgress   `json:"progress,omitempty"`
}

// HasContent reports whether any structured curriculum is attached.
func (s *SessionContentContext) HasContent() bool {
	return s != nil && s.Content != nil
}
