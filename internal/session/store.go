package session

import (
	"context"
	"errors"
	"time"

	"phoenix/config"
	"phoenix/infras/postgres"
	"phoenix/internal/state"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

var ErrNotFound = errors.New("session not found")

// Store persists visitor snapshots server-side, keyed by the opaque ID the
// signed cookie carries. Implementations must treat an expired entry the
// same as a missing one.
type Store interface {
	Save(ctx context.Context, id string, snapshot state.Snapshot, ttl time.Duration) error
	Get(ctx context.Context, id string) (state.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// NewStore picks the snapshot backend from configuration. Unknown values
// fall back to the in-process store, which loses sessions on restart.
func NewStore(cfg *config.Config, client *goRedis.Client, db *postgres.Connection) Store {
	switch cfg.Session.Store {
	case "redis":
		return NewRedisStore(client)
	case "postgres":
		return NewPostgresStore(db)
	case "memory":
		return NewMemoryStore()
	default:
		log.Warn().Str("store", cfg.Session.Store).Msg("Unknown session store, using in-memory sessions")

		return NewMemoryStore()
	}
}
