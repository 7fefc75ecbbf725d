package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ibam-edu/actioncoach/internal/chat"
	"github.com/ibam-edu/actioncoach/internal/models"
	"github.com/ibam-edu/actioncoach/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.InMemoryStore) {
	t.Helper()
	st := store.NewInMemoryStore()
	return NewServer(st), st
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// decodeResult decodes the APIResponse envelope and re-decodes Result into dst.
func decodeResult(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) models.APIResponse {
	t.Helper()
	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v (body: %s)", err, rec.Body.String())
	}
	if dst != nil {
		raw, err := json.Marshal(envelope.Result)
		if err != nil {
			t.Fatalf("failed to re-marshal result: %v", err)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			t.Fatalf("failed to decode result: %v", err)
		}
	}
	return envelope
}

func TestHealthHandler(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", rec.Code, http.StatusOK)
	}
	envelope := decodeResult(t, rec, nil)
	if envelope.Status != string(models.APIStatusOK) {
		t.Errorf("health envelope status = %q, want %q", envelope.Status, models.APIStatusOK)
	}
}

func TestChatHandler(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{
		UserID:  "user-1",
		Message: "Should I bribe an official to win the contract?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("chat status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp models.CoachingResponse
	decodeResult(t, rec, &resp)
	if resp.Intent != "business_ethics" {
		t.Errorf("chat intent = %q, want business_ethics", resp.Intent)
	}
	if resp.ConversationID == "" {
		t.Error("chat response should carry a conversation ID")
	}
	if resp.Answer == "" {
		t.Error("chat response should carry an answer")
	}
}

func TestChatHandlerConversationContinuity(t *testing.T) {
	s, _ := newTestServer(t)
	first := doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{
		Message: "How do I apply this at my job?",
	})
	var resp1 models.CoachingResponse
	decodeResult(t, first, &resp1)
	if resp1.ConversationID == "" {
		t.Fatal("first response should create a conversation")
	}

	second := doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{
		ConversationID: resp1.ConversationID,
		Message:        "How do I apply this at my job?",
	})
	if second.Code != http.StatusOK {
		t.Fatalf("second chat status = %d (body: %s)", second.Code, second.Body.String())
	}
	var resp2 models.CoachingResponse
	decodeResult(t, second, &resp2)
	if resp2.ConversationID != resp1.ConversationID {
		t.Errorf("conversation ID changed: %q vs %q", resp2.ConversationID, resp1.ConversationID)
	}
	// Identical follow-ups were offered in the first turn, so the second
	// turn must not repeat them.
	for _, q := range resp2.FollowUpQuestions {
		for _, prev := range resp1.FollowUpQuestions {
			if q == prev {
				t.Errorf("follow-up question repeated across turns: %q", q)
			}
		}
	}
}

func TestChatHandlerUnknownConversation(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{
		ConversationID: "no-such-conversation",
		Message:        "hello",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown conversation status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestChatHandlerValidation(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{Message: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty message status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	rec = doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{
		Message: strings.Repeat("x", models.MaxMessageLength+1),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized message status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestChatHandlerMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/chat", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow header = %q, want %q", allow, http.MethodPost)
	}
}

func TestChatHandlerUsesSessionContent(t *testing.T) {
	s, st := newTestServer(t)
	err := st.SaveSessionContent(models.SessionContentContext{
		ModuleID:  1,
		SessionID: 2,
		Title:     "Honest Bookkeeping",
		Content: &models.SessionContent{
			CaseStudies: []string{"A shopkeeper in Kisumu kept one honest ledger and won the market's trust."},
		},
	})
	if err != nil {
		t.Fatalf("SaveSessionContent failed: %v", err)
	}
	rec := doJSON(t, s.Handler(), http.MethodPost, "/chat", models.CoachingRequest{
		Message:   "Tell me about the case study",
		ModuleID:  1,
		SessionID: 2,
	})
	var resp models.CoachingResponse
	decodeResult(t, rec, &resp)
	if !strings.Contains(resp.Answer, "Kisumu") {
		t.Errorf("answer should include stored case study, got %q", resp.Answer)
	}
	if resp.Source != models.SourceAI {
		t.Errorf("source = %q, want %q", resp.Source, models.SourceAI)
	}
}

func TestScoreHandler(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/actions/score", models.ScoreRequest{
		UserID:        "user-1",
		ActionText:    "I will call 3 customers by Friday 5pm and tell my mentor",
		SessionNumber: 3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("score status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var result models.ScoreResult
	decodeResult(t, rec, &result)
	if result.Score.Overall < 7 {
		t.Errorf("overall score = %d, want a high score for a complete action", result.Score.Overall)
	}
	if result.Level != "foundation" {
		t.Errorf("level = %q, want foundation for session 3", result.Level)
	}
	if result.Celebration == "" {
		t.Error("celebration should not be empty")
	}
}

func TestScoreHandlerValidation(t *testing.T) {
	s, _ := newTestServer(t)
	tests := []models.ScoreRequest{
		{ActionText: "", SessionNumber: 1},
		{ActionText: "do it", SessionNumber: 0},
		{ActionText: strings.Repeat("x", models.MaxActionTextLength+1), SessionNumber: 1},
	}
	for _, req := range tests {
		rec := doJSON(t, s.Handler(), http.MethodPost, "/actions/score", req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("score %+v status = %d, want %d", req, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestCreateAndListActions(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodPost, "/actions", models.ActionRecord{
		UserID:        "user-1",
		SessionNumber: 2,
		ActionText:    "I will complete my customer list by Friday",
		Completed:     true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create action status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var created actionCreatedResult
	decodeResult(t, rec, &created)
	if created.Record.ID == "" {
		t.Error("created record should have a generated ID")
	}
	if created.Record.Score.Overall == 0 {
		t.Error("created record should be scored server-side")
	}
	foundFirst := false
	for _, c := range created.Celebrations {
		if strings.Contains(c, "First action") {
			foundFirst = true
		}
	}
	if !foundFirst {
		t.Errorf("first action should unlock the first-action celebration, got %v", created.Celebrations)
	}
	if len(created.Reflections) == 0 {
		t.Error("recording an action should return reflection questions")
	}

	list := doJSON(t, s.Handler(), http.MethodGet, "/actions?user=user-1", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("list actions status = %d", list.Code)
	}
	var records []models.ActionRecord
	decodeResult(t, list, &records)
	if len(records) != 1 || records[0].ID != created.Record.ID {
		t.Errorf("listed records = %+v, want the created record", records)
	}
}

func TestListActionsRequiresUser(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/actions", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("list without user status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPatternsHandler(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/patterns?user=nobody", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("pattern for unknown user status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	doJSON(t, s.Handler(), http.MethodPost, "/actions", models.ActionRecord{
		UserID:        "user-1",
		SessionNumber: 2,
		ActionText:    "I will finish my budget by Tuesday",
		Completed:     true,
	})
	rec = doJSON(t, s.Handler(), http.MethodGet, "/patterns?user=user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pattern status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var pattern models.UserActionPattern
	decodeResult(t, rec, &pattern)
	if pattern.TotalActionsCompleted != 1 || len(pattern.QualityProgression) != 1 {
		t.Errorf("pattern not updated after action: %+v", pattern)
	}
}

func TestLevelsHandler(t *testing.T) {
	s, _ := newTestServer(t)
	tests := []struct {
		path string
		tier string
	}{
		{"/coaching/levels/1", "foundation"},
		{"/coaching/levels/7", "refinement"},
		{"/coaching/levels/14", "integration"},
		{"/coaching/levels/22", "mastery"},
	}
	for _, tt := range tests {
		rec := doJSON(t, s.Handler(), http.MethodGet, tt.path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", tt.path, rec.Code)
		}
		var level struct {
			Tier string `json:"Tier"`
		}
		decodeResult(t, rec, &level)
		if level.Tier != tt.tier {
			t.Errorf("GET %s tier = %q, want %q", tt.path, level.Tier, tt.tier)
		}
	}

	rec := doJSON(t, s.Handler(), http.MethodGet, "/coaching/levels/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid session number status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	rec = doJSON(t, s.Handler(), http.MethodGet, "/coaching/levels/0", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero session number status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSessionsHandlerRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/sessions/1/4", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing session status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	put := doJSON(t, s.Handler(), http.MethodPut, "/sessions/1/4", models.SessionContentContext{
		Title: "Pricing with Integrity",
		Content: &models.SessionContent{
			Reading: "Honest scales belong to the Lord.",
		},
	})
	if put.Code != http.StatusOK {
		t.Fatalf("put session status = %d (body: %s)", put.Code, put.Body.String())
	}

	rec = doJSON(t, s.Handler(), http.MethodGet, "/sessions/1/4", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get session status = %d", rec.Code)
	}
	var session models.SessionContentContext
	decodeResult(t, rec, &session)
	if session.ModuleID != 1 || session.SessionID != 4 {
		t.Errorf("session IDs = %d/%d, want 1/4", session.ModuleID, session.SessionID)
	}
	if session.Title != "Pricing with Integrity" {
		t.Errorf("session title = %q", session.Title)
	}
}

func TestSessionGuidanceHandler(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/sessions/2/9/guidance", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("guidance for missing session status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	put := doJSON(t, s.Handler(), http.MethodPut, "/sessions/2/9", models.SessionContentContext{
		Title: "Counting the Cost",
		Content: &models.SessionContent{
			Reading:       "Track your cash flow before you commit to growth.",
			KeyPrinciples: []string{"Count the cost before you build"},
			Scripture:     &models.ScriptureContent{Reference: "Luke 14:28"},
		},
	})
	if put.Code != http.StatusOK {
		t.Fatalf("put session status = %d (body: %s)", put.Code, put.Body.String())
	}

	rec = doJSON(t, s.Handler(), http.MethodGet, "/sessions/2/9/guidance", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get guidance status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var guidance chat.SessionGuidance
	decodeResult(t, rec, &guidance)
	if guidance.SessionTitle != "Counting the Cost" {
		t.Errorf("guidance title = %q", guidance.SessionTitle)
	}
	if _, ok := guidance.ApplicableTerms["Cash Flow"]; !ok {
		t.Errorf("guidance should surface terms from the reading, got %v", guidance.ApplicableTerms)
	}
	if len(guidance.SessionQuestions) == 0 {
		t.Error("guidance should derive questions from key principles")
	}
	if len(guidance.CommonMistakes) == 0 || len(guidance.DiscoveryQuestions) == 0 || len(guidance.ExcellencePrompts) == 0 {
		t.Error("guidance missing static knowledge tables")
	}
	if !strings.Contains(guidance.ScriptureApplication, "Financial planning") {
		t.Errorf("guidance scripture application = %q", guidance.ScriptureApplication)
	}

	post := doJSON(t, s.Handler(), http.MethodPost, "/sessions/2/9/guidance", nil)
	if post.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST guidance status = %d, want %d", post.Code, http.StatusMethodNotAllowed)
	}
}

func TestSessionsHandlerBadPath(t *testing.T) {
	s, _ := newTestServer(t)
	for _, path := range []string{"/sessions/1", "/sessions/a/b", "/sessions/0/1", "/sessions/1/2/3/4"} {
		rec := doJSON(t, s.Handler(), http.MethodGet, path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusBadRequest)
		}
	}
	rec := doJSON(t, s.Handler(), http.MethodGet, "/sessions/1/2/notes", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown sub-resource status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPutSessionRequiresTitle(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodPut, "/sessions/1/1", models.SessionContentContext{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("put without title status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
