package user

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb)
}

func TestRedisStoreCreateAndFind(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "test@example.com", "hashed")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byEmail, err := store.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, created.ID, byEmail.ID)
	require.Equal(t, "hashed", byEmail.PasswordHash)

	byID, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "test@example.com", byID.Email)
}

func TestRedisStoreFindAbsent(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	u, err := store.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, u)

	u, err = store.FindByID(ctx, "missing-id")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestRedisStoreDuplicateEmail(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, "dup@example.com", "hash1")
	require.NoError(t, err)

	_, err = store.Create(ctx, "dup@example.com", "hash2")
	require.ErrorIs(t, err, ErrEmailTaken)

	// 負けた側の書き込みで既存レコードが壊れていないこと
	u, err := store.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "hash1", u.PasswordHash)
}

func TestRedisStorePing(t *testing.T) {
	store := newTestRedisStore(t)
	require.NoError(t, store.Ping(context.Background()))
}
