// Package user はユーザーの永続化を担当するストア層を提供します。
package user

import (
	"context"
	"errors"
)

// User は永続化されたユーザーレコードです。
// PasswordHash は平文パスワードのハッシュであり、レスポンスには含めません。
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// ErrEmailTaken は同じメールアドレスのレコードが既に存在する場合に Create が返します。
// 一意性の最終的な保証はストア側にあり、呼び出し側の事前チェックは最適化にすぎません。
var ErrEmailTaken = errors.New("email already in use")

// Store はユーザーレコードの検索と作成を提供します。
// 見つからない場合は (nil, nil) を返し、エラーにはしません。
type Store interface {
	// FindByEmail はメールアドレスでユーザーを検索します。
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID は ID でユーザーを検索します。
	FindByID(ctx context.Context, id string) (*User, error)
	// Create はユーザーを作成し、ID を採番して返します。
	// 同じメールアドレスが既に存在する場合は ErrEmailTaken を返します。
	Create(ctx context.Context, email, passwordHash string) (*User, error)
}
