package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/auth-api/internal/token"
)

// CookieName は認証トークンを運ぶクッキーの名前です。
const CookieName = "auth-token"

// CookieMaxAgeSeconds はクッキーの MaxAge に利用する秒数を返します。
// トークンの有効期間から導出し、クッキーだけが先に切れてセッションが
// 黙って短縮されることを防ぎます。
func CookieMaxAgeSeconds() int {
	return int(token.TTL.Seconds())
}

func (m *Manager) cookieSameSite() http.SameSite {
	if m.cfg.IsProduction() {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}

func (m *Manager) cookieDomain() string {
	// 開発環境ではドメインを設定しない（localhost でポートをまたいで動くように）
	if m.cfg.IsProduction() {
		return m.cfg.CookieDomain
	}
	return ""
}

// attachTokenCookie はトークンを HTTP-only クッキーとしてレスポンスに設定します。
func (m *Manager) attachTokenCookie(c *gin.Context, tok string) {
	c.SetSameSite(m.cookieSameSite())
	c.SetCookie(CookieName, tok, CookieMaxAgeSeconds(), "/", m.cookieDomain(), m.cfg.IsProduction(), true)
}

// clearTokenCookie はクッキーの削除指示をレスポンスに設定します。
// 値と MaxAge 以外の属性は attachTokenCookie と揃えます。属性が食い違うと
// クライアントによっては削除されません。
func (m *Manager) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(m.cookieSameSite())
	c.SetCookie(CookieName, "", -1, "/", m.cookieDomain(), m.cfg.IsProduction(), true)
}
