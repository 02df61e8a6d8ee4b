package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	userIDKeyPrefix    = "user:id:"
	userEmailKeyPrefix = "user:email:"
)

// RedisStore はユーザーを Redis に JSON ドキュメントとして保存します。
// メールアドレスの一意性は user:email:<email> キーへの SETNX で保証します。
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore は RedisStore を作成します。
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Ping はストアへの接続を確認します。起動時のヘルスチェックに使用します。
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// FindByEmail はメールアドレスでユーザーを検索します。
func (s *RedisStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	id, err := s.rdb.Get(ctx, emailKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return s.FindByID(ctx, id)
}

// FindByID は ID でユーザーを検索します。
func (s *RedisStore) FindByID(ctx context.Context, id string) (*User, error) {
	data, err := s.rdb.Get(ctx, idKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create はユーザーを作成します。
// 同時リクエストが同じメールアドレスで競合した場合、SETNX に負けた側が
// ErrEmailTaken を受け取ります。
func (s *RedisStore) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	ok, err := s.rdb.SetNX(ctx, emailKey(email), u.ID, 0).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmailTaken
	}

	payload, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, idKey(u.ID), payload, 0).Err(); err != nil {
		// ドキュメント本体の保存に失敗した場合は予約したメールキーを解放する
		_ = s.rdb.Del(ctx, emailKey(email)).Err()
		return nil, fmt.Errorf("failed to save user document: %w", err)
	}

	return u, nil
}

func idKey(id string) string {
	return userIDKeyPrefix + id
}

func emailKey(email string) string {
	return userEmailKeyPrefix + email
}
