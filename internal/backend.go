package internal

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweights/internal/config"
	"github.com/2beens/gymweights/internal/kv"
)

type BackendParams struct {
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

// Backends is the opened key-value backend plus the clients behind it, kept
// so callers can attach metrics and the rate limiter.
type Backends struct {
	KV          kv.Backend
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
}

// Remote reports whether the backend lives in another process.
func (b *Backends) Remote() bool {
	return b.RedisClient != nil || b.DBPool != nil
}

func (b *Backends) Close() {
	closeBackend(b.KV, b.DBPool)
}

// OpenBackend opens the backend named in cfg. Postgres schema migrations
// run before the pool is created.
func OpenBackend(ctx context.Context, cfg *config.Config, params BackendParams) (*Backends, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		log.Warnln("using in-memory backend, data is lost on restart")
		return &Backends{KV: kv.NewMemory()}, nil
	case config.BackendSQLite:
		log.Debugf("using sqlite backend: %s", cfg.SQLitePath)
		sqlite, err := kv.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return &Backends{KV: sqlite}, nil
	case config.BackendRedis:
		rdb := kv.NewRedisClient(ctx, kv.NewRedisClientParams{
			Host:           cfg.RedisHost,
			Port:           cfg.RedisPort,
			Password:       params.RedisPassword,
			DB:             cfg.RedisDB,
			TracingEnabled: params.TracingEnabled,
		})
		return &Backends{KV: kv.NewRedis(rdb), RedisClient: rdb}, nil
	case config.BackendPostgres:
		poolParams := kv.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		}
		if err := kv.RunMigrations(poolParams.DSN()); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		dbPool, err := kv.NewDBPool(ctx, poolParams)
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		return &Backends{KV: kv.NewPostgres(dbPool), DBPool: dbPool}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", cfg.Backend)
	}
}

func closeBackend(backend kv.Backend, dbPool *pgxpool.Pool) {
	// closes the redis client too, when redis is the backend
	if backend != nil {
		if err := backend.Close(); err != nil {
			log.Errorf("failed to close kv backend: %s", err)
		}
	}

	if dbPool != nil {
		log.Debugln("closing db pool ...")
		dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}
