// Package api provides HTTP handlers for the action coach endpoints.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ibam-edu/actioncoach/internal/chat"
	"github.com/ibam-edu/actioncoach/internal/coach"
	"github.com/ibam-edu/actioncoach/internal/models"
)

// actionCreatedResult is the payload returned after recording an action.
type actionCreatedResult struct {
	Record       models.ActionRecord `json:"record"`
	Celebrations []string            `json:"celebrations,omitempty"`
	Reflections  []string            `json:"reflections,omitempty"`
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	slog.Debug("Server.chatHandler: processing chat request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		slog.Warn("Server.chatHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req models.CoachingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Server.chatHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("Server.chatHandler: validation failed", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	// Session content is optional context; a missing session is not an error.
	var session *models.SessionContentContext
	if req.ModuleID > 0 && req.SessionID > 0 {
		var err error
		session, err = s.store.GetSessionContent(req.ModuleID, req.SessionID)
		if errors.Is(err, models.ErrSessionNotFound) {
			slog.Warn("Server.chatHandler: session content not found", "module", req.ModuleID, "session", req.SessionID)
			session = nil
		} else if err != nil {
			slog.Error("Server.chatHandler: failed to load session content", "error", err, "module", req.ModuleID, "session", req.SessionID)
			writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load session content"))
			return
		}
	}

	var state *models.ConversationState
	if req.ConversationID == "" {
		state = chat.NewConversationState()
	} else {
		var err error
		state, err = s.store.GetConversationState(req.ConversationID)
		if errors.Is(err, models.ErrConversationNotFound) {
			slog.Warn("Server.chatHandler: conversation not found", "conversationID", req.ConversationID)
			writeJSONResponse(w, http.StatusNotFound, models.Error("Conversation not found"))
			return
		}
		if err != nil {
			slog.Error("Server.chatHandler: failed to load conversation", "error", err, "conversationID", req.ConversationID)
			writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load conversation"))
			return
		}
	}

	resp := s.composer.Respond(req.Message, session)
	resp.FollowUpQuestions = chat.FilterFollowUps(state, resp.FollowUpQuestions)
	chat.AdvanceConversation(state, resp)
	if err := s.store.SaveConversationState(*state); err != nil {
		slog.Error("Server.chatHandler: failed to save conversation", "error", err, "conversationID", state.ID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to save conversation"))
		return
	}
	resp.ConversationID = state.ID

	slog.Info("Server.chatHandler: coaching response composed", "intent", resp.Intent, "source", resp.Source, "conversationID", state.ID, "turn", state.Turns)
	writeJSONResponse(w, http.StatusOK, models.Success(resp))
}

func (s *Server) scoreHandler(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	slog.Debug("Server.scoreHandler: processing score request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		slog.Warn("Server.scoreHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req models.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Server.scoreHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("Server.scoreHandler: validation failed", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}

	snapshot, err := s.patternSnapshot(req.UserID)
	if err != nil {
		slog.Error("Server.scoreHandler: failed to load user pattern", "error", err, "userID", req.UserID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load user pattern"))
		return
	}

	score := coach.ScoreAction(req.ActionText, req.SessionNumber, snapshot)
	level := coach.LevelFor(req.SessionNumber)
	var previousScore int
	if snapshot != nil {
		previousScore = snapshot.PreviousScore
	}
	result := models.ScoreResult{
		Score:       score,
		Level:       string(level.Tier),
		Prompts:     coach.CoachingPrompts(req.ActionText, req.SessionNumber, score),
		Celebration: coach.CelebrationMessage(req.SessionNumber, score, previousScore),
	}

	slog.Info("Server.scoreHandler: action scored", "userID", req.UserID, "session", req.SessionNumber, "overall", score.Overall, "tier", level.Tier)
	writeJSONResponse(w, http.StatusOK, models.Success(result))
}

func (s *Server) actionsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createActionHandler(w, r)
	case http.MethodGet:
		s.listActionsHandler(w, r)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		slog.Warn("Server.actionsHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) createActionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	slog.Debug("Server.createActionHandler: processing create action request")
	var rec models.ActionRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		slog.Warn("Server.createActionHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}
	if err := rec.Validate(); err != nil {
		slog.Warn("Server.createActionHandler: validation failed", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error(err.Error()))
		return
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()

	// Score server-side when the client did not submit one.
	if rec.Score.Overall == 0 {
		snapshot, err := s.patternSnapshot(rec.UserID)
		if err != nil {
			slog.Error("Server.createActionHandler: failed to load user pattern", "error", err, "userID", rec.UserID)
			writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load user pattern"))
			return
		}
		rec.Score = coach.ScoreAction(rec.ActionText, rec.SessionNumber, snapshot)
	}

	if err := s.store.AddActionRecord(rec); err != nil {
		slog.Error("Server.createActionHandler: failed to store action record", "error", err, "id", rec.ID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to store action record"))
		return
	}

	pattern, err := s.store.GetUserPattern(rec.UserID)
	if errors.Is(err, models.ErrPatternNotFound) {
		pattern = &models.UserActionPattern{UserID: rec.UserID}
	} else if err != nil {
		slog.Error("Server.createActionHandler: failed to load user pattern", "error", err, "userID", rec.UserID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load user pattern"))
		return
	}
	pattern.Apply(rec)
	pattern.LastUpdated = rec.CreatedAt
	if err := s.store.SaveUserPattern(*pattern); err != nil {
		slog.Error("Server.createActionHandler: failed to save user pattern", "error", err, "userID", rec.UserID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to save user pattern"))
		return
	}

	result := actionCreatedResult{
		Record:       rec,
		Celebrations: coach.MicroCelebrationsFor(pattern, rec),
		Reflections:  coach.ReflectionQuestions(rec.Completed),
	}
	slog.Info("Server.createActionHandler: action recorded", "id", rec.ID, "userID", rec.UserID, "session", rec.SessionNumber, "completed", rec.Completed)
	writeJSONResponse(w, http.StatusCreated, models.SuccessWithMessage("Action recorded", result))
}

func (s *Server) listActionsHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.listActionsHandler: processing list actions request")
	userID := r.URL.Query().Get("user")
	if userID == "" {
		slog.Warn("Server.listActionsHandler: missing user parameter")
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Missing required parameter: user"))
		return
	}
	records, err := s.store.ListActionRecords(userID)
	if err != nil {
		slog.Error("Server.listActionsHandler: failed to list action records", "error", err, "userID", userID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to list action records"))
		return
	}
	slog.Debug("Server.listActionsHandler: returning action records", "userID", userID, "count", len(records))
	writeJSONResponse(w, http.StatusOK, models.Success(records))
}

func (s *Server) patternsHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.patternsHandler: processing pattern request", "method", r.Method)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		slog.Warn("Server.patternsHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("user")
	if userID == "" {
		slog.Warn("Server.patternsHandler: missing user parameter")
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Missing required parameter: user"))
		return
	}
	pattern, err := s.store.GetUserPattern(userID)
	if errors.Is(err, models.ErrPatternNotFound) {
		slog.Debug("Server.patternsHandler: pattern not found", "userID", userID)
		writeJSONResponse(w, http.StatusNotFound, models.Error("No action pattern recorded for user"))
		return
	}
	if err != nil {
		slog.Error("Server.patternsHandler: failed to load user pattern", "error", err, "userID", userID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load user pattern"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(pattern))
}

func (s *Server) levelsHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.levelsHandler: processing levels request", "method", r.Method, "path", r.URL.Path)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		slog.Warn("Server.levelsHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	suffix := strings.TrimPrefix(r.URL.Path, "/coaching/levels/")
	if suffix == "" {
		writeJSONResponse(w, http.StatusOK, models.Success(coach.Levels()))
		return
	}
	sessionNumber, err := strconv.Atoi(suffix)
	if err != nil || sessionNumber <= 0 {
		slog.Warn("Server.levelsHandler: invalid session number", "value", suffix)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid session number"))
		return
	}
	level := coach.LevelFor(sessionNumber)
	slog.Debug("Server.levelsHandler: resolved level", "session", sessionNumber, "tier", level.Tier)
	writeJSONResponse(w, http.StatusOK, models.Success(level))
}

func (s *Server) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Server.sessionsHandler: processing session request", "method", r.Method, "path", r.URL.Path)
	moduleID, sessionID, sub, ok := parseSessionPath(r.URL.Path)
	if !ok {
		slog.Warn("Server.sessionsHandler: invalid session path", "path", r.URL.Path)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid session path, expected /sessions/{module}/{session}"))
		return
	}
	if sub == "guidance" {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			slog.Warn("Server.sessionsHandler: method not allowed", "method", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		s.getSessionGuidanceHandler(w, moduleID, sessionID)
		return
	}
	if sub != "" {
		slog.Warn("Server.sessionsHandler: unknown session sub-resource", "path", r.URL.Path)
		writeJSONResponse(w, http.StatusNotFound, models.Error("Unknown session sub-resource"))
		return
	}
	switch r.Method {
	case http.MethodGet:
		s.getSessionHandler(w, moduleID, sessionID)
	case http.MethodPut:
		s.putSessionHandler(w, r, moduleID, sessionID)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPut}, ", "))
		slog.Warn("Server.sessionsHandler: method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) getSessionHandler(w http.ResponseWriter, moduleID, sessionID int) {
	session, err := s.store.GetSessionContent(moduleID, sessionID)
	if errors.Is(err, models.ErrSessionNotFound) {
		slog.Debug("Server.getSessionHandler: session not found", "module", moduleID, "session", sessionID)
		writeJSONResponse(w, http.StatusNotFound, models.Error("Session content not found"))
		return
	}
	if err != nil {
		slog.Error("Server.getSessionHandler: failed to load session content", "error", err, "module", moduleID, "session", sessionID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load session content"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(session))
}

func (s *Server) getSessionGuidanceHandler(w http.ResponseWriter, moduleID, sessionID int) {
	session, err := s.store.GetSessionContent(moduleID, sessionID)
	if errors.Is(err, models.ErrSessionNotFound) {
		slog.Debug("Server.getSessionGuidanceHandler: session not found", "module", moduleID, "session", sessionID)
		writeJSONResponse(w, http.StatusNotFound, models.Error("Session content not found"))
		return
	}
	if err != nil {
		slog.Error("Server.getSessionGuidanceHandler: failed to load session content", "error", err, "module", moduleID, "session", sessionID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to load session content"))
		return
	}
	writeJSONResponse(w, http.StatusOK, models.Success(chat.GuidanceFor(session)))
}

func (s *Server) putSessionHandler(w http.ResponseWriter, r *http.Request, moduleID, sessionID int) {
	if r.Body != nil {
		defer r.Body.Close()
	}
	var session models.SessionContentContext
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		slog.Warn("Server.putSessionHandler: failed to decode JSON", "error", err)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Invalid JSON format"))
		return
	}
	// Path wins over body for addressing.
	session.ModuleID = moduleID
	session.SessionID = sessionID
	if strings.TrimSpace(session.Title) == "" {
		slog.Warn("Server.putSessionHandler: missing title", "module", moduleID, "session", sessionID)
		writeJSONResponse(w, http.StatusBadRequest, models.Error("Missing required field: title"))
		return
	}
	if err := s.store.SaveSessionContent(session); err != nil {
		slog.Error("Server.putSessionHandler: failed to save session content", "error", err, "module", moduleID, "session", sessionID)
		writeJSONResponse(w, http.StatusInternalServerError, models.Error("Failed to save session content"))
		return
	}
	slog.Info("Server.putSessionHandler: session content saved", "module", moduleID, "session", sessionID, "title", session.Title)
	writeJSONResponse(w, http.StatusOK, models.SuccessWithMessage("Session content saved", nil))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSONResponse(w, http.StatusOK, models.SuccessWithMessage("Action coach API is healthy", nil))
}

// patternSnapshot loads the scoring snapshot for a user. A missing pattern
// or empty user ID yields nil, which scoring treats as a first-time user.
func (s *Server) patternSnapshot(userID string) (*models.PatternSnapshot, error) {
	if userID == "" {
		return nil, nil
	}
	pattern, err := s.store.GetUserPattern(userID)
	if errors.Is(err, models.ErrPatternNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snapshot := pattern.Snapshot()
	return &snapshot, nil
}

// parseSessionPath extracts module and session IDs from
// /sessions/{module}/{session}, plus an optional trailing sub-resource
// segment such as "guidance".
func parseSessionPath(path string) (moduleID, sessionID int, sub string, ok bool) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(path, "/sessions/"), "/"), "/")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, "", false
	}
	moduleID, err := strconv.Atoi(parts[0])
	if err != nil || moduleID <= 0 {
		return 0, 0, "", false
	}
	sessionID, err = strconv.Atoi(parts[1])
	if err != nil || sessionID <= 0 {
		return 0, 0, "", false
	}
	if len(parts) == 3 {
		sub = parts[2]
	}
	return moduleID, sessionID, sub, true
}
