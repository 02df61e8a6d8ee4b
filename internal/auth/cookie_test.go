package auth

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/auth-api/internal/config"
	"github.com/yourusername/auth-api/internal/token"
	"github.com/yourusername/auth-api/internal/user"
)

func cookieFromHandler(t *testing.T, cfg *config.Config, handle func(m *Manager, c *gin.Context)) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := user.NewMemoryStore()
	logger := log.New(&bytes.Buffer{}, "", 0)
	tokens := token.NewService([]byte("test-secret"), store, logger)
	manager := NewManager(cfg, store, tokens, logger)

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		handle(manager, c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected exactly one cookie, got %v", rec.Header().Values("Set-Cookie"))
	}
	return cookies[0]
}

func TestAttachCookieDevelopment(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment, CookieDomain: "example.com"}
	cookie := cookieFromHandler(t, cfg, func(m *Manager, c *gin.Context) {
		m.attachTokenCookie(c, "tok")
	})

	if !cookie.HttpOnly {
		t.Error("cookie must be httpOnly")
	}
	if cookie.Secure {
		t.Error("secure must be off outside production")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("sameSite = %v, want lax outside production", cookie.SameSite)
	}
	// 開発環境では COOKIE_DOMAIN が設定されていても無視する
	if cookie.Domain != "" {
		t.Errorf("domain must be empty outside production: %q", cookie.Domain)
	}
	if cookie.MaxAge != CookieMaxAgeSeconds() {
		t.Errorf("MaxAge = %d, want %d", cookie.MaxAge, CookieMaxAgeSeconds())
	}
}

func TestAttachCookieProduction(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, CookieDomain: "example.com"}
	cookie := cookieFromHandler(t, cfg, func(m *Manager, c *gin.Context) {
		m.attachTokenCookie(c, "tok")
	})

	if !cookie.Secure {
		t.Error("secure must be on in production")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("sameSite = %v, want strict in production", cookie.SameSite)
	}
	if cookie.Domain != "example.com" {
		t.Errorf("unexpected domain: %q", cookie.Domain)
	}
}

func TestClearCookieMirrorsAttach(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, CookieDomain: "example.com"}

	attached := cookieFromHandler(t, cfg, func(m *Manager, c *gin.Context) {
		m.attachTokenCookie(c, "tok")
	})
	cleared := cookieFromHandler(t, cfg, func(m *Manager, c *gin.Context) {
		m.clearTokenCookie(c)
	})

	// 値と MaxAge 以外は attach と一致していないと削除が効かないクライアントがある
	if cleared.Name != attached.Name ||
		cleared.Path != attached.Path ||
		cleared.Domain != attached.Domain ||
		cleared.Secure != attached.Secure ||
		cleared.HttpOnly != attached.HttpOnly ||
		cleared.SameSite != attached.SameSite {
		t.Fatalf("clear attributes must mirror attach:\nattach=%#v\nclear=%#v", attached, cleared)
	}
	if cleared.Value != "" {
		t.Errorf("clear cookie must have empty value: %q", cleared.Value)
	}
	if cleared.MaxAge >= 0 {
		t.Errorf("clear cookie must expire: MaxAge=%d", cleared.MaxAge)
	}
}

// トークン TTL とクッキー MaxAge が乖離しないことの回帰テスト
func TestCookieMaxAgeMatchesTokenTTL(t *testing.T) {
	if CookieMaxAgeSeconds() != int(token.TTL.Seconds()) {
		t.Fatalf("cookie MaxAge %d != token TTL %d", CookieMaxAgeSeconds(), int(token.TTL.Seconds()))
	}
	if CookieMaxAgeSeconds() != 30*24*60*60 {
		t.Fatalf("validity window must be 30 days, got %d seconds", CookieMaxAgeSeconds())
	}
}
