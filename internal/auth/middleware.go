package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth はクッキーのトークンを検証するミドルウェアを返します。
//
// ステータスコードの使い分けは API 利用側が分岐に使っている契約です:
// クッキーが無い場合は 401、あるが無効な場合は 403。
// レスポンスボディはどちらも {"error":"Unauthorized"} で、
// 失敗理由（期限切れ・署名不一致・改ざん）は区別しません。
func (m *Manager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(CookieName)
		if err != nil || tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, ok := m.tokens.Verify(c.Request.Context(), tok)
		if !ok {
			m.logger.Printf("auth: token validation failed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
