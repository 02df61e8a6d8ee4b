package main

import (
	"context"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/yourusername/auth-api/internal/config"
	"github.com/yourusername/auth-api/internal/user"
)

const storePingTimeout = 5 * time.Second

// setupStore はユーザーストアを構築します。
// STORE_REDIS_URL が設定されていれば Redis に接続し、起動時に疎通を確認します。
// 未設定の場合（ローカル開発）はインメモリストアにフォールバックします。
func setupStore(cfg *config.Config) (user.Store, error) {
	if cfg.StoreRedisURL == "" {
		log.Printf("STORE_REDIS_URL not set, using in-memory user store")
		return user.NewMemoryStore(), nil
	}

	opt, err := redis.ParseURL(cfg.StoreRedisURL)
	if err != nil {
		return nil, err
	}

	store := user.NewRedisStore(redis.NewClient(opt))

	ctx, cancel := context.WithTimeout(context.Background(), storePingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		return nil, err
	}

	log.Printf("Connected to user store at %s", opt.Addr)
	return store, nil
}
