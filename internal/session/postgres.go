package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"phoenix/infras/postgres"
	"phoenix/internal/state"
	"phoenix/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	querySaveSession = `
		INSERT INTO sessions (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at`
	queryGetSession    = `SELECT data FROM sessions WHERE id = $1 AND expires_at > $2`
	queryDeleteSession = `DELETE FROM sessions WHERE id = $1`
)

type postgresStore struct {
	db *postgres.Connection
}

func NewPostgresStore(db *postgres.Connection) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Save(ctx context.Context, id string, snapshot state.Snapshot, ttl time.Duration) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	expiresAt := timezone.Now().Add(ttl)

	if _, err := s.db.DB.ExecContext(ctx, querySaveSession, id, payload, expiresAt); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *postgresStore) Get(ctx context.Context, id string) (state.Snapshot, error) {
	var payload []byte

	err := s.db.DB.GetContext(ctx, &payload, queryGetSession, id, timezone.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return state.Snapshot{}, ErrNotFound
		}

		return state.Snapshot{}, fmt.Errorf("failed to get session: %w", err)
	}

	var snapshot state.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("stored session is unreadable")

		return state.Snapshot{}, ErrNotFound
	}

	return snapshot, nil
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.DB.ExecContext(ctx, queryDeleteSession, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
