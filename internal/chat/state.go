package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/ibam-edu/actioncoach/internal/models"
)

// NewConversationState creates a fresh conversation with a generated ID.
func NewConversationState() *models.ConversationState {
	return &models.ConversationState{
		ID:             uuid.NewString(),
		AskedQuestions: make(map[string]bool),
		UpdatedAt:      time.Now(),
	}
}

// AdvanceConversation records one completed exchange: it bumps the turn
// counter, remembers which follow-up questions were offered so later turns
// do not repeat them, and stamps the update time.
func AdvanceConversation(state *models.ConversationState, resp models.CoachingResponse) {
	if state.AskedQuestions == nil {
		state.AskedQuestions = make(map[string]bool)
	}
	state.Turns++
	for _, q := range resp.FollowUpQuestions {
		state.AskedQuestions[q] = true
	}
	state.UpdatedAt = time.Now()
}

// FilterFollowUps drops follow-up questions already asked earlier in the
// conversation. The order of the remaining questions is preserved.
func FilterFollowUps(state *models.ConversationState, questions []string) []string {
	if state == nil || len(state.AskedQuestions) == 0 {
		return questions
	}
	var fresh []string
	for _, q := range questions {
		if !state.AskedQuestions[q] {
			fresh = append(fresh, q)
		}
	}
	return fresh
}
