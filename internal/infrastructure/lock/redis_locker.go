package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

var _ inventory.Locker = (*RedisLocker)(nil)

// RedisLocker bloqueo distribuido para varias instancias de la API sobre la misma base.
type RedisLocker struct {
	client  *redislock.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
	log     *logger.Logger
}

// RedisOptions parámetros del bloqueo.
type RedisOptions struct {
	TTL     time.Duration
	Retries int
	Backoff time.Duration
}

// NewRedisLocker construye el locker sobre un cliente go-redis ya conectado.
func NewRedisLocker(rdb redis.UniversalClient, opts RedisOptions, log *logger.Logger) *RedisLocker {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Second
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 100 * time.Millisecond
	}
	return &RedisLocker{
		client:  redislock.New(rdb),
		ttl:     opts.TTL,
		retries: opts.Retries,
		backoff: opts.Backoff,
		log:     log,
	}
}

// Lock obtiene "lock:<key>". Si no se consigue tras los reintentos devuelve domain.ErrConflict.
func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := "lock:" + key
	l, err := r.client.Obtain(ctx, lockKey, r.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(r.backoff), r.retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		r.log.Warn().Str("key", lockKey).Msg("no se pudo obtener el bloqueo")
		return nil, fmt.Errorf("%w: operación en curso sobre %s", domain.ErrConflict, key)
	}
	if err != nil {
		return nil, fmt.Errorf("obtener bloqueo %s: %w", lockKey, err)
	}
	return func() {
		// Contexto propio: el de la petición puede estar cancelado al liberar.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			r.log.Error().Err(err).Str("key", lockKey).Msg("liberar bloqueo")
		}
	}, nil
}

// NewRedisClient conecta a Redis y verifica con PING.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
