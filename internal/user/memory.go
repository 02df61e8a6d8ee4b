package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore はメモリ上にユーザーを保持するストアです。
// 開発環境（Redis 未設定時）とテストで使用します。
type MemoryStore struct {
	mu      sync.Mutex
	byEmail map[string]*User
	byID    map[string]*User
}

// NewMemoryStore は MemoryStore を作成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

// FindByEmail はメールアドレスでユーザーを検索します。
func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

// FindByID は ID でユーザーを検索します。
func (s *MemoryStore) FindByID(ctx context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

// Create はユーザーを作成します。存在チェックと挿入は同一ロック内で行います。
func (s *MemoryStore) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.byEmail[email] = u
	s.byID[u.ID] = u

	clone := *u
	return &clone, nil
}
