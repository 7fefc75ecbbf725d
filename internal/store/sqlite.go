// Package store provides storage backends for the action coach.
//
// This file implements the SQLite-backed store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/ibam-edu/actioncoach/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given DSN.
// The DSN should be a file path to the SQLite database file.
// If the directory doesn't exist, it will be created.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	slog.Debug("SQLite database directory verified/created", "dir", dir)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}
	slog.Debug("SQLite ping successful")

	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite migrations applied successfully")

	return &SQLiteStore{db: db}, nil
}

// SaveSessionContent stores or replaces the content for one session.
func (s *SQLiteStore) SaveSessionContent(session models.SessionContentContext) error {
	contentJSON, err := marshalNullable(session.Content)
	if err != nil {
		slog.Error("SQLiteStore SaveSessionContent marshal failed", "error", err, "module", session.ModuleID, "session", session.SessionID)
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO session_content (module_id, session_id, title, content, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		session.ModuleID, session.SessionID, session.Title, contentJSON)
	if err != nil {
		slog.Error("SQLiteStore SaveSessionContent failed", "error", err, "module", session.ModuleID, "session", session.SessionID)
		return fmt.Errorf("failed to save session %d/%d: %w", session.ModuleID, session.SessionID, err)
	}
	slog.Debug("SQLiteStore SaveSessionContent succeeded", "module", session.ModuleID, "session", session.SessionID)
	return nil
}

// GetSessionContent retrieves the content for one session. Returns
// models.ErrSessionNotFound when the session has never been stored.
func (s *SQLiteStore) GetSessionContent(moduleID, sessionID int) (*models.SessionContentContext, error) {
	var session models.SessionContentContext
	var contentJSON sql.NullString
	err := s.db.QueryRow(`SELECT module_id, session_id, title, content FROM session_content
		WHERE module_id = ? AND session_id = ?`, moduleID, sessionID).
		Scan(&session.ModuleID, &session.SessionID, &session.Title, &contentJSON)
	if err == sql.ErrNoRows {
		slog.Debug("SQLiteStore GetSessionContent not found", "module", moduleID, "session", sessionID)
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		slog.Error("SQLiteStore GetSessionContent failed", "error", err, "module", moduleID, "session", sessionID)
		return nil, err
	}
	if err := unmarshalNullable(contentJSON.String, &session.Content); err != nil {
		slog.Error("SQLiteStore GetSessionContent unmarshal failed", "error", err, "module", moduleID, "session", sessionID)
		return nil, err
	}
	slog.Debug("SQLiteStore GetSessionContent found", "module", moduleID, "session", sessionID)
	return &session, nil
}

func (s *SQLiteStore) AddActionRecord(rec models.ActionRecord) error {
	scoreJSON, err := marshalValue(rec.Score)
	if err != nil {
		slog.Error("SQLiteStore AddActionRecord marshal failed", "error", err, "id", rec.ID)
		return err
	}
	_, err = s.db.Exec(`INSERT INTO action_records (id, user_id, session_number, action_text, score, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.SessionNumber, rec.ActionText, scoreJSON, rec.Completed, rec.CreatedAt)
	if err != nil {
		slog.Error("SQLiteStore AddActionRecord failed", "error", err, "id", rec.ID, "userID", rec.UserID)
		return fmt.Errorf("failed to insert action record %s: %w", rec.ID, err)
	}
	slog.Debug("SQLiteStore AddActionRecord succeeded", "id", rec.ID, "userID", rec.UserID)
	return nil
}

// ListActionRecords returns the user's records ordered by creation time.
func (s *SQLiteStore) ListActionRecords(userID string) ([]models.ActionRecord, error) {
	rows, err := s.db.Query(`SELECT id, user_id, session_number, action_text, score, completed, created_at
		FROM action_records WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		slog.Error("SQLiteStore ListActionRecords query failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to query action records: %w", err)
	}
	defer rows.Close()

	var records []models.ActionRecord
	for rows.Next() {
		rec, err := scanActionRecord(rows)
		if err != nil {
			slog.Error("SQLiteStore ListActionRecords scan failed", "error", err, "userID", userID)
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		slog.Error("SQLiteStore ListActionRecords rows iteration failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to iterate action record rows: %w", err)
	}
	slog.Debug("SQLiteStore ListActionRecords succeeded", "userID", userID, "count", len(records))
	return records, nil
}

// GetUserPattern retrieves the aggregated pattern for a user. Returns
// models.ErrPatternNotFound when the user has no recorded actions yet.
func (s *SQLiteStore) GetUserPattern(userID string) (*models.UserActionPattern, error) {
	var patternJSON string
	err := s.db.QueryRow(`SELECT pattern FROM user_patterns WHERE user_id = ?`, userID).Scan(&patternJSON)
	if err == sql.ErrNoRows {
		slog.Debug("SQLiteStore GetUserPattern not found", "userID", userID)
		return nil, models.ErrPatternNotFound
	}
	if err != nil {
		slog.Error("SQLiteStore GetUserPattern failed", "error", err, "userID", userID)
		return nil, err
	}
	var pattern models.UserActionPattern
	if err := unmarshalValue(patternJSON, &pattern); err != nil {
		slog.Error("SQLiteStore GetUserPattern unmarshal failed", "error", err, "userID", userID)
		return nil, err
	}
	slog.Debug("SQLiteStore GetUserPattern found", "userID", userID)
	return &pattern, nil
}

func (s *SQLiteStore) SaveUserPattern(pattern models.UserActionPattern) error {
	patternJSON, err := marshalValue(pattern)
	if err != nil {
		slog.Error("SQLiteStore SaveUserPattern marshal failed", "error", err, "userID", pattern.UserID)
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO user_patterns (user_id, pattern, last_updated)
		VALUES (?, ?, ?)`, pattern.UserID, patternJSON, pattern.LastUpdated)
	if err != nil {
		slog.Error("SQLiteStore SaveUserPattern failed", "error", err, "userID", pattern.UserID)
		return fmt.Errorf("failed to save pattern for %s: %w", pattern.UserID, err)
	}
	slog.Debug("SQLiteStore SaveUserPattern succeeded", "userID", pattern.UserID)
	return nil
}

func (s *SQLiteStore) SaveConversationState(state models.ConversationState) error {
	askedJSON, err := marshalNullable(state.AskedQuestions)
	if err != nil {
		slog.Error("SQLiteStore SaveConversationState marshal failed", "error", err, "id", state.ID)
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO conversations (id, turns, asked_questions, updated_at)
		VALUES (?, ?, ?, ?)`, state.ID, state.Turns, askedJSON, state.UpdatedAt)
	if err != nil {
		slog.Error("SQLiteStore SaveConversationState failed", "error", err, "id", state.ID)
		return fmt.Errorf("failed to save conversation %s: %w", state.ID, err)
	}
	slog.Debug("SQLiteStore SaveConversationState succeeded", "id", state.ID, "turns", state.Turns)
	return nil
}

// GetConversationState retrieves a conversation by ID. Returns
// models.ErrConversationNotFound for unknown IDs.
func (s *SQLiteStore) GetConversationState(id string) (*models.ConversationState, error) {
	var state models.ConversationState
	var askedJSON sql.NullString
	err := s.db.QueryRow(`SELECT id, turns, asked_questions, updated_at FROM conversations WHERE id = ?`, id).
		Scan(&state.ID, &state.Turns, &askedJSON, &state.UpdatedAt)
	if err == sql.ErrNoRows {
		slog.Debug("SQLiteStore GetConversationState not found", "id", id)
		return nil, models.ErrConversationNotFound
	}
	if err != nil {
		slog.Error("SQLiteStore GetConversationState failed", "error", err, "id", id)
		return nil, err
	}
	if err := unmarshalNullable(askedJSON.String, &state.AskedQuestions); err != nil {
		slog.Error("SQLiteStore GetConversationState unmarshal failed", "error", err, "id", id)
		return nil, err
	}
	slog.Debug("SQLiteStore GetConversationState found", "id", id, "turns", state.Turns)
	return &state, nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	slog.Debug("Closing SQLite database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close SQLite database", "error", err)
	}
	return err
}
