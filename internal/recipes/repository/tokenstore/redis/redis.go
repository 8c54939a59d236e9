package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/internal/pkg/redistools"
	"github.com/Leopold1975/recipes/internal/recipes/repository/tokenstore"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the one live token of every user. A key expires together
// with the token it holds.
type TokenStore struct {
	rdb *redis.Client
}

func New(ctx context.Context, cfg config.TokenStore) (TokenStore, error) {
	rdb := redis.NewClient(&redis.Options{ //nolint:exhaustruct
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := redistools.Connect(ctx, rdb); err != nil {
		return TokenStore{}, fmt.Errorf("connect error: %w", err)
	}

	return TokenStore{
		rdb: rdb,
	}, nil
}

const createAttempts = 3

func tokenKey(userID int64) string {
	return fmt.Sprintf("token:user:%d", userID)
}

func (ts TokenStore) GetToken(ctx context.Context, userID int64) (string, error) {
	token, err := ts.rdb.Get(ctx, tokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", tokenstore.ErrNotFound
	} else if err != nil {
		return "", fmt.Errorf("get error: %w", err)
	}

	return token, nil
}

// TouchToken returns the stored token and restarts its ttl in one GETEX.
func (ts TokenStore) TouchToken(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	token, err := ts.rdb.GetEx(ctx, tokenKey(userID), ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", tokenstore.ErrNotFound
	} else if err != nil {
		return "", fmt.Errorf("getex error: %w", err)
	}

	return token, nil
}

// CreateToken stores token if the user has none. When another login got there
// first, the token it stored is returned instead.
func (ts TokenStore) CreateToken(ctx context.Context, userID int64, token string, ttl time.Duration) (string, error) {
	for range createAttempts {
		ok, err := ts.rdb.SetNX(ctx, tokenKey(userID), token, ttl).Result()
		if err != nil {
			return "", fmt.Errorf("setnx error: %w", err)
		}

		if ok {
			return token, nil
		}

		stored, err := ts.TouchToken(ctx, userID, ttl)
		if errors.Is(err, tokenstore.ErrNotFound) {
			continue
		}

		return stored, err
	}

	return "", fmt.Errorf("%w: token kept disappearing", tokenstore.ErrNotFound)
}

func (ts TokenStore) DeleteToken(ctx context.Context, userID int64) error {
	if err := ts.rdb.Del(ctx, tokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("del error: %w", err)
	}

	return nil
}

func (ts TokenStore) Shutdown(_ context.Context) error {
	if err := ts.rdb.Close(); err != nil {
		return fmt.Errorf("close error: %w", err)
	}

	return nil
}
