// Package store provides storage backends for the action coach.
//
// This file implements the PostgreSQL-backed store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "embed"

	"github.com/ibam-edu/actioncoach/internal/models"
	_ "github.com/lib/pq"
)

// Database connection pool configuration constants.
const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns is the default maximum number of idle connections in the pool
	DefaultMaxIdleConns = 25
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused
	DefaultConnMaxLifetime = 5 * time.Minute
)

//go:embed migrations_postgres.sql
var postgresMigrations string

type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store based on provided options.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("PostgresStore.NewPostgresStore: creating Postgres store", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = DefaultMaxOpenConns
	}
	maxIdle := DefaultMaxIdleConns
	if maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}
	slog.Debug("Postgres ping successful")

	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Postgres migrations applied successfully")
	return &PostgresStore{db: db}, nil
}

// SaveSessionContent stores or replaces the content for one session.
func (s *PostgresStore) SaveSessionContent(session models.SessionContentContext) error {
	contentJSON, err := marshalNullable(session.Content)
	if err != nil {
		slog.Error("PostgresStore SaveSessionContent marshal failed", "error", err, "module", session.ModuleID, "session", session.SessionID)
		return err
	}
	_, err = s.db.Exec(`INSERT INTO session_content (module_id, session_id, title, content, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (module_id, session_id)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`,
		session.ModuleID, session.SessionID, session.Title, contentJSON)
	if err != nil {
		slog.Error("PostgresStore SaveSessionContent failed", "error", err, "module", session.ModuleID, "session", session.SessionID)
		return fmt.Errorf("failed to save session %d/%d: %w", session.ModuleID, session.SessionID, err)
	}
	slog.Debug("PostgresStore SaveSessionContent succeeded", "module", session.ModuleID, "session", session.SessionID)
	return nil
}

// GetSessionContent retrieves the content for one session. Returns
// models.ErrSessionNotFound when the session has never been stored.
func (s *PostgresStore) GetSessionContent(moduleID, sessionID int) (*models.SessionContentContext, error) {
	var session models.SessionContentContext
	var contentJSON sql.NullString
	err := s.db.QueryRow(`SELECT module_id, session_id, title, content FROM session_content
		WHERE module_id = $1 AND session_id = $2`, moduleID, sessionID).
		Scan(&session.ModuleID, &session.SessionID, &session.Title, &contentJSON)
	if err == sql.ErrNoRows {
		slog.Debug("PostgresStore GetSessionContent not found", "module", moduleID, "session", sessionID)
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		slog.Error("PostgresStore GetSessionContent failed", "error", err, "module", moduleID, "session", sessionID)
		return nil, err
	}
	if err := unmarshalNullable(contentJSON.String, &session.Content); err != nil {
		slog.Error("PostgresStore GetSessionContent unmarshal failed", "error", err, "module", moduleID, "session", sessionID)
		return nil, err
	}
	slog.Debug("PostgresStore GetSessionContent found", "module", moduleID, "session", sessionID)
	return &session, nil
}

func (s *PostgresStore) AddActionRecord(rec models.ActionRecord) error {
	scoreJSON, err := marshalValue(rec.Score)
	if err != nil {
		slog.Error("PostgresStore AddActionRecord marshal failed", "error", err, "id", rec.ID)
		return err
	}
	_, err = s.db.Exec(`INSERT INTO action_records (id, user_id, session_number, action_text, score, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.SessionNumber, rec.ActionText, scoreJSON, rec.Completed, rec.CreatedAt)
	if err != nil {
		slog.Error("PostgresStore AddActionRecord failed", "error", err, "id", rec.ID, "userID", rec.UserID)
		return fmt.Errorf("failed to insert action record %s: %w", rec.ID, err)
	}
	slog.Debug("PostgresStore AddActionRecord succeeded", "id", rec.ID, "userID", rec.UserID)
	return nil
}

// ListActionRecords returns the user's records ordered by creation time.
func (s *PostgresStore) ListActionRecords(userID string) ([]models.ActionRecord, error) {
	rows, err := s.db.Query(`SELECT id, user_id, session_number, action_text, score, completed, created_at
		FROM action_records WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		slog.Error("PostgresStore ListActionRecords query failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to query action records: %w", err)
	}
	defer rows.Close()

	var records []models.ActionRecord
	for rows.Next() {
		rec, err := scanActionRecord(rows)
		if err != nil {
			slog.Error("PostgresStore ListActionRecords scan failed", "error", err, "userID", userID)
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		slog.Error("PostgresStore ListActionRecords rows iteration failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to iterate action record rows: %w", err)
	}
	slog.Debug("PostgresStore ListActionRecords succeeded", "userID", userID, "count", len(records))
	return records, nil
}

// GetUserPattern retrieves the aggregated pattern for a user. Returns
// models.ErrPatternNotFound when the user has no recorded actions yet.
func (s *PostgresStore) GetUserPattern(userID string) (*models.UserActionPattern, error) {
	var patternJSON string
	err := s.db.QueryRow(`SELECT pattern FROM user_patterns WHERE user_id = $1`, userID).Scan(&patternJSON)
	if err == sql.ErrNoRows {
		slog.Debug("PostgresStore GetUserPattern not found", "userID", userID)
		return nil, models.ErrPatternNotFound
	}
	if err != nil {
		slog.Error("PostgresStore GetUserPattern failed", "error", err, "userID", userID)
		return nil, err
	}
	var pattern models.UserActionPattern
	if err := unmarshalValue(patternJSON, &pattern); err != nil {
		slog.Error("PostgresStore GetUserPattern unmarshal failed", "error", err, "userID", userID)
		return nil, err
	}
	slog.Debug("PostgresStore GetUserPattern found", "userID", userID)
	return &pattern, nil
}

func (s *PostgresStore) SaveUserPattern(pattern models.UserActionPattern) error {
	patternJSON, err := marshalValue(pattern)
	if err != nil {
		slog.Error("PostgresStore SaveUserPattern marshal failed", "error", err, "userID", pattern.UserID)
		return err
	}
	_, err = s.db.Exec(`INSERT INTO user_patterns (user_id, pattern, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET pattern = EXCLUDED.pattern, last_updated = EXCLUDED.last_updated`,
		pattern.UserID, patternJSON, pattern.LastUpdated)
	if err != nil {
		slog.Error("PostgresStore SaveUserPattern failed", "error", err, "userID", pattern.UserID)
		return fmt.Errorf("failed to save pattern for %s: %w", pattern.UserID, err)
	}
	slog.Debug("PostgresStore SaveUserPattern succeeded", "userID", pattern.UserID)
	return nil
}

func (s *PostgresStore) SaveConversationState(state models.ConversationState) error {
	askedJSON, err := marshalNullable(state.AskedQuestions)
	if err != nil {
		slog.Error("PostgresStore SaveConversationState marshal failed", "error", err, "id", state.ID)
		return err
	}
	_, err = s.db.Exec(`INSERT INTO conversations (id, turns, asked_questions, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET turns = EXCLUDED.turns, asked_questions = EXCLUDED.asked_questions, updated_at = EXCLUDED.updated_at`,
		state.ID, state.Turns, askedJSON, state.UpdatedAt)
	if err != nil {
		slog.Error("PostgresStore SaveConversationState failed", "error", err, "id", state.ID)
		return fmt.Errorf("failed to save conversation %s: %w", state.ID, err)
	}
	slog.Debug("PostgresStore SaveConversationState succeeded", "id", state.ID, "turns", state.Turns)
	return nil
}

// GetConversationState retrieves a conversation by ID. Returns
// models.ErrConversationNotFound for unknown IDs.
func (s *PostgresStore) GetConversationState(id string) (*models.ConversationState, error) {
	var state models.ConversationState
	var askedJSON sql.NullString
	err := s.db.QueryRow(`SELECT id, turns, asked_questions, updated_at FROM conversations WHERE id = $1`, id).
		Scan(&state.ID, &state.Turns, &askedJSON, &state.UpdatedAt)
	if err == sql.ErrNoRows {
		slog.Debug("PostgresStore GetConversationState not found", "id", id)
		return nil, models.ErrConversationNotFound
	}
	if err != nil {
		slog.Error("PostgresStore GetConversationState failed", "error", err, "id", id)
		return nil, err
	}
	if err := unmarshalNullable(askedJSON.String, &state.AskedQuestions); err != nil {
		slog.Error("PostgresStore GetConversationState unmarshal failed", "error", err, "id", id)
		return nil, err
	}
	slog.Debug("PostgresStore GetConversationState found", "id", id, "turns", state.Turns)
	return &state, nil
}

// Close closes the Postgres database connection.
func (s *PostgresStore) Close() error {
	slog.Debug("Closing Postgres database connection")
	err := s.db.Close()
	if err != nil {
		slog.Error("Failed to close Postgres database", "error", err)
	}
	return err
}
