// Package auth は認証フローのハンドラーとミドルウェアを提供します。
package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/auth-api/internal/config"
	"github.com/yourusername/auth-api/internal/password"
	"github.com/yourusername/auth-api/internal/token"
	"github.com/yourusername/auth-api/internal/user"
)

const (
	msgRegistrationFailed = "Registration failed. Please try again."
	msgLoginFailed        = "Login failed. Please check your credentials."
	msgLogoutSuccessful   = "Logout successful"
)

// Manager は認証処理をまとめた構造体です。
// ストアとトークンサービスを組み合わせ、成功・失敗の判断を一箇所で行います。
type Manager struct {
	cfg    *config.Config
	store  user.Store
	tokens *token.Service
	logger *log.Logger
}

// NewManager は認証マネージャーを作成します。
func NewManager(cfg *config.Config, store user.Store, tokens *token.Service, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		cfg:    cfg,
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// credentialsRequest は登録・ログイン共通のリクエストボディです。
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func bindCredentials(c *gin.Context) credentialsRequest {
	var req credentialsRequest
	// ボディが不正な JSON でもここでは弾かず、空の値のまま
	// バリデーションに通してフィールドエラーとして返す
	_ = c.ShouldBindJSON(&req)
	return req
}

// Register は POST /auth/register のハンドラーです。
func (m *Manager) Register(c *gin.Context) {
	req := bindCredentials(c)
	email := normalizeEmail(req.Email)

	if fieldErrors := validateRegister(email, req.Password); len(fieldErrors) > 0 {
		respondValidationError(c, fieldErrors)
		return
	}

	ctx := c.Request.Context()

	// 事前チェック。同時リクエストに対する保証はストアの一意性制約が持つ。
	existing, err := m.store.FindByEmail(ctx, email)
	if err != nil {
		m.logger.Printf("register: user lookup failed: %v", err)
		respondError(c, http.StatusBadRequest, msgRegistrationFailed)
		return
	}
	if existing != nil {
		m.logger.Printf("register: %v", user.ErrEmailTaken)
		respondError(c, http.StatusBadRequest, msgRegistrationFailed)
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		m.logger.Printf("register: password hashing failed: %v", err)
		respondError(c, http.StatusBadRequest, msgRegistrationFailed)
		return
	}

	u, err := m.store.Create(ctx, email, hash)
	if err != nil {
		// 事前チェックをすり抜けた競合挿入もここで同じ結果に落とす
		if errors.Is(err, user.ErrEmailTaken) {
			m.logger.Printf("register: %v", err)
		} else {
			m.logger.Printf("register: user creation failed: %v", err)
		}
		respondError(c, http.StatusBadRequest, msgRegistrationFailed)
		return
	}

	tok, err := m.tokens.Issue(u.ID)
	if err != nil {
		m.logger.Printf("register: token issuance failed: %v", err)
		respondError(c, http.StatusBadRequest, msgRegistrationFailed)
		return
	}
	m.attachTokenCookie(c, tok)

	m.logger.Printf("register: user %s registered", u.ID)
	respondSuccess(c, gin.H{"email": u.Email})
}

// Login は POST /auth/login のハンドラーです。
// ユーザー不在とパスワード不一致は呼び出し側から区別できないようにします
// （登録済みメールアドレスの推測を防ぐため）。
func (m *Manager) Login(c *gin.Context) {
	req := bindCredentials(c)
	email := normalizeEmail(req.Email)

	if fieldErrors := validateLogin(email, req.Password); len(fieldErrors) > 0 {
		respondValidationError(c, fieldErrors)
		return
	}

	ctx := c.Request.Context()

	u, err := m.store.FindByEmail(ctx, email)
	if err != nil {
		m.logger.Printf("login: user lookup failed: %v", err)
		respondError(c, http.StatusBadRequest, msgLoginFailed)
		return
	}
	if u == nil || !password.Verify(req.Password, u.PasswordHash) {
		respondError(c, http.StatusBadRequest, msgLoginFailed)
		return
	}

	tok, err := m.tokens.Issue(u.ID)
	if err != nil {
		m.logger.Printf("login: token issuance failed: %v", err)
		respondError(c, http.StatusBadRequest, msgLoginFailed)
		return
	}
	m.attachTokenCookie(c, tok)

	respondSuccess(c, gin.H{"email": u.Email})
}

// Logout は POST /auth/logout のハンドラーです。
// 未ログイン状態でも成功します（冪等）。トークン自体はサーバー側で失効させず、
// クライアントにクッキーの削除を指示するだけです。
func (m *Manager) Logout(c *gin.Context) {
	m.clearTokenCookie(c)
	respondSuccess(c, gin.H{
		"success": true,
		"message": msgLogoutSuccessful,
	})
}

// Me は GET /auth/me のハンドラーです。RequireAuth の背後に置きます。
func (m *Manager) Me(c *gin.Context) {
	respondSuccess(c, gin.H{"authenticated": true})
}
