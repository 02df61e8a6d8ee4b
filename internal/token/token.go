// Package token は署名付きセッショントークンの発行と検証を提供します。
package token

import (
	"context"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yourusername/auth-api/internal/user"
)

// TTL はトークンの有効期間です。
// クッキーの MaxAge はこの値から導出し、両者がずれないようにします。
const TTL = 30 * 24 * time.Hour

// Claims はトークンに埋め込むクレームです。
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service はトークンの発行と検証を行います。
// 署名鍵は起動時に一度だけ渡され、以後変更されません。ログにも出力しません。
type Service struct {
	secret []byte
	store  user.Store
	logger *log.Logger
}

// NewService は Service を作成します。
func NewService(secret []byte, store user.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		secret: secret,
		store:  store,
		logger: logger,
	}
}

// Issue はユーザー ID を埋め込んだ署名付きトークンを発行します。
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify はトークンを検証し、有効であれば埋め込まれたユーザー ID を返します。
// 署名と有効期限をまず検証し（I/O なし）、その後ユーザーがまだ存在することを
// 確認します。削除済みユーザーのトークンは形式上有効でも無効として扱います。
// 失敗理由は呼び出し側に区別させず、ok=false に集約します。
func (s *Service) Verify(ctx context.Context, tokenStr string) (string, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", false
	}
	if claims.UserID == "" {
		return "", false
	}

	u, err := s.store.FindByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Printf("token verification: user lookup failed: %v", err)
		return "", false
	}
	if u == nil {
		return "", false
	}

	return claims.UserID, true
}
