// Package models defines the core data structures for ActionCoach.
//
// It includes the value types exchanged between the coaching engine, the
// store, and the API layer, along with request validation and the standard
// API response envelope.
package models

import (
	"errors"
	"strings"
	"time"
)

// ResponseSource identifies which path produced a coaching answer.
type ResponseSource string

const (
	// SourceAI marks answers produced from live session content.
	SourceAI ResponseSource = "ai"
	// SourceFallback marks answers produced from the static template library.
	SourceFallback ResponseSource = "fallback"
)

// Validation constants for input validation
const (
	// MaxMessageLength defines the maximum allowed length for a chat message
	MaxMessageLength = 2000
	// MaxActionTextLength defines the maximum allowed length for an action commitment
	MaxActionTextLength = 1000
)

// Error variables for better error handling and testability
var (
	ErrEmptyMessage         = errors.New("message cannot be empty")
	ErrMessageTooLong       = errors.New("message exceeds maximum length")
	ErrEmptyActionText      = errors.New("action text cannot be empty")
	ErrActionTextTooLong    = errors.New("action text exceeds maximum length")
	ErrInvalidSessionNumber = errors.New("session number must be positive")
	ErrEmptyUserID          = errors.New("user id cannot be empty")
	ErrSessionNotFound      = errors.New("session content not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrPatternNotFound      = errors.New("user pattern not found")
)

// ActionQualityScore is the result of scoring one action commitment against
// the four-dimension quality rubric. Overall is the rounded mean of the four
// sub-scores. Suggestions are ordered by detection order.
type ActionQualityScore struct {
	Overall        int      `json:"overall"`
	Specific       int      `json:"specific"`
	Measurable     int      `json:"measurable"`
	Timebound      int      `json:"timebound"`
	Accountability int      `json:"accountability"`
	Suggestions    []string `json:"improvement_suggestions,omitempty"`
}

// PatternSnapshot is the point-in-time view of a user's action history that
// the scoring engine consumes. The full aggregate lives in UserActionPattern
// and is owned by the store.
type PatternSnapshot struct {
	PreviousScore         int `json:"previous_score"`
	CompletionStreak      int `json:"completion_streak"`
	TotalActionsCompleted int `json:"total_actions_completed"`
}

// UserActionPattern aggregates a user's historical scores and completion
// behavior. QualityProgression is append-only, one entry per scored action,
// ordered by creation time.
type UserActionPattern struct {
	UserID                      string    `json:"user_id"`
	BestCompletionDays          []string  `json:"best_completion_days,omitempty"`
	PreferredTimeframes         []string  `json:"preferred_timeframes,omitempty"`
	SuccessfulActionTypes       []string  `json:"successful_action_types,omitempty"`
	AccountabilityEffectiveness float64   `json:"accountability_effectiveness"`
	QualityProgression          []int     `json:"quality_progression,omitempty"`
	CompletionStreak            int       `json:"completion_streak"`
	TotalActionsCompleted       int       `json:"total_actions_completed"`
	LastUpdated                 time.Time `json:"last_updated"`
}

// Snapshot returns the read-only view of the pattern that scoring consumes.
func (p *UserActionPattern) Snapshot() PatternSnapshot {
	snap := PatternSnapshot{
		CompletionStreak:      p.CompletionStreak,
		TotalActionsCompleted: p.TotalActionsCompleted,
	}
	if n := len(p.QualityProgression); n > 0 {
		snap.PreviousScore = p.QualityProgression[n-1]
	}
	return snap
}

// Apply folds one action record into the pattern aggregate.
func (p *UserActionPattern) Apply(rec ActionRecord) {
	p.QualityProgression = append(p.QualityProgression, rec.Score.Overall)
	if rec.Completed {
		p.CompletionStreak++
		p.TotalActionsCompleted++
		day := rec.CreatedAt.Weekday().String()
		if !containsString(p.BestCompletionDays, day) {
			p.BestCompletionDays = append(p.BestCompletionDays, day)
		}
	} else {
		p.CompletionStreak = 0
	}
	p.LastUpdated = rec.CreatedAt
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ActionRecord is one committed action with its quality score.
type ActionRecord struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	SessionNumber int                `json:"session_number"`
	ActionText    string             `json:"action_text"`
	Score         ActionQualityScore `json:"score"`
	Completed     bool               `json:"completed"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Validate performs validation on an ActionRecord before it is persisted.
func (r *ActionRecord) Validate() error {
	if r.UserID == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(r.ActionText) == "" {
		return ErrEmptyActionText
	}
	if len(r.ActionText) > MaxActionTextLength {
		return ErrActionTextTooLong
	}
	if r.SessionNumber <= 0 {
		return ErrInvalidSessionNumber
	}
	return nil
}

// CoachingRequest is an incoming chat-coach message. ModuleID and SessionID
// are optional; when both are set the server loads session content so the
// classifier and composer can use it.
type CoachingRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
	Message        string `json:"message"`
	ModuleID       int    `json:"module_id,omitempty"`
	SessionID      int    `json:"session_id,omitempty"`
}

// Validate performs validation on a CoachingRequest.
func (r *CoachingRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if len(r.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// CoachingResponse is a complete, self-contained coaching answer plus
// optional structured metadata. There is no streaming or partial response.
type CoachingResponse struct {
	Answer              string         `json:"answer"`
	Source              ResponseSource `json:"source"`
	Intent              string         `json:"intent,omitempty"`
	ConversationID      string         `json:"conversation_id,omitempty"`
	ScriptureReferences []string       `json:"scripture_references,omitempty"`
	FollowUpQuestions   []string       `json:"follow_up_questions,omitempty"`
}

// ScoreRequest asks the server to score an action commitment.
type ScoreRequest struct {
	UserID        string `json:"user_id,omitempty"`
	ActionText    string `json:"action_text"`
	SessionNumber int    `json:"session_number"`
}

// Validate performs validation on a ScoreRequest.
func (r *ScoreRequest) Validate() error {
	if strings.TrimSpace(r.ActionText) == "" {
		return ErrEmptyActionText
	}
	if len(r.ActionText) > MaxActionTextLength {
		return ErrActionTextTooLong
	}
	if r.SessionNumber <= 0 {
		return ErrInvalidSessionNumber
	}
	return nil
}

// ScoreResult bundles everything the tracker UI renders after scoring.
type ScoreResult struct {
	Score       ActionQualityScore `json:"score"`
	Level       string             `json:"level"`
	Prompts     []string           `json:"prompts"`
	Celebration string             `json:"celebration"`
}

// ConversationState tracks per-conversation chat state: how many turns have
// happened and which follow-up questions were already offered, so the
// composer does not repeat itself within one conversation.
type ConversationState struct {
	ID             string          `json:"id"`
	Turns          int             `json:"turns"`
	AskedQuestions map[string]bool `json:"asked_questions,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
