package auth

import "github.com/gin-gonic/gin"

// ContextUserIDKey は、認証済みリクエストのユーザー ID をハンドラー間で
// 共有するためのキーです。
const ContextUserIDKey = "auth.userID"

// UserID はリクエストコンテキストから認証済みユーザーの ID を取り出します。
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
