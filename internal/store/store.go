// Package store provides storage backends for the action coach.
//
// It includes an in-memory store for tests and single-process use, plus
// SQLite and PostgreSQL backed stores for persistent deployments.
package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/ibam-edu/actioncoach/internal/models"
)

// Store is the persistence interface shared by all backends.
//
// Lookup methods return the models package's not-found sentinel errors
// (models.ErrSessionNotFound, models.ErrPatternNotFound,
// models.ErrConversationNotFound) when no row exists.
type Store interface {
	SaveSessionContent(session models.SessionContentContext) error
	GetSessionContent(moduleID, sessionID int) (*models.SessionContentContext, error)

	AddActionRecord(rec models.ActionRecord) error
	ListActionRecords(userID string) ([]models.ActionRecord, error)

	GetUserPattern(userID string) (*models.UserActionPattern, error)
	SaveUserPattern(pattern models.UserActionPattern) error

	SaveConversationState(state models.ConversationState) error
	GetConversationState(id string) (*models.ConversationState, error)

	Close() error
}

// Opts holds configuration options for store implementations.
type Opts struct {
	DSN          string
	MaxOpenConns int
}

// Option defines a functional option for store configuration.
type Option func(*Opts)

// WithDSN sets the data source name: a file path for SQLite, a connection
// string for PostgreSQL.
func WithDSN(dsn string) Option {
	return func(o *Opts) {
		o.DSN = dsn
	}
}

// WithMaxOpenConns caps the connection pool size. Only the PostgreSQL
// backend uses it; zero or negative keeps the backend default.
func WithMaxOpenConns(n int) Option {
	return func(o *Opts) {
		o.MaxOpenConns = n
	}
}

// DetectDSNType classifies a DSN as "postgres" or "sqlite". Postgres DSNs
// use a postgres scheme or key=value form; everything else is treated as a
// SQLite file path.
func DetectDSNType(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return "postgres"
	}
	return "sqlite"
}

// NewStore opens the backend matching the configured DSN type.
func NewStore(opts ...Option) (Store, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if DetectDSNType(cfg.DSN) == "postgres" {
		return NewPostgresStore(opts...)
	}
	return NewSQLiteStore(opts...)
}

type sessionKey struct {
	moduleID  int
	sessionID int
}

// InMemoryStore is a map-backed Store, safe for concurrent use.
type InMemoryStore struct {
	mu            sync.RWMutex
	sessions      map[sessionKey]models.SessionContentContext
	actions       []models.ActionRecord
	patterns      map[string]models.UserActionPattern
	conversations map[string]models.ConversationState
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions:      make(map[sessionKey]models.SessionContentContext),
		patterns:      make(map[string]models.UserActionPattern),
		conversations: make(map[string]models.ConversationState),
	}
}

func (s *InMemoryStore) SaveSessionContent(session models.SessionContentContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey{session.ModuleID, session.SessionID}] = session
	return nil
}

func (s *InMemoryStore) GetSessionContent(moduleID, sessionID int) (*models.SessionContentContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionKey{moduleID, sessionID}]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return &session, nil
}

func (s *InMemoryStore) AddActionRecord(rec models.ActionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, rec)
	return nil
}

// ListActionRecords returns the user's records ordered by creation time.
func (s *InMemoryStore) ListActionRecords(userID string) ([]models.ActionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []models.ActionRecord
	for _, rec := range s.actions {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (s *InMemoryStore) GetUserPattern(userID string) (*models.UserActionPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pattern, ok := s.patterns[userID]
	if !ok {
		return nil, models.ErrPatternNotFound
	}
	return &pattern, nil
}

func (s *InMemoryStore) SaveUserPattern(pattern models.UserActionPattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns[pattern.UserID] = pattern
	return nil
}

func (s *InMemoryStore) SaveConversationState(state models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[state.ID] = state
	return nil
}

func (s *InMemoryStore) GetConversationState(id string) (*models.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.conversations[id]
	if !ok {
		return nil, models.ErrConversationNotFound
	}
	return &state, nil
}

func (s *InMemoryStore) Close() error {
	return nil
}
