package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// successResponse は全エンドポイント共通の成功エンベロープです。
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorResponse は業務エラー時の共通エンベロープです。
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// validationErrorResponse はバリデーション失敗時のレスポンスです。
// FieldErrors はルール宣言順に 1 ルール 1 エントリで並びます。
type validationErrorResponse struct {
	Success     bool                `json:"success"`
	Error       string              `json:"error"`
	FieldErrors []map[string]string `json:"fieldErrors"`
}

func respondSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, successResponse{
		Success: true,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{
		Success: false,
		Error:   message,
	})
}

func respondValidationError(c *gin.Context, fieldErrors []map[string]string) {
	c.JSON(http.StatusBadRequest, validationErrorResponse{
		Success:     false,
		Error:       "Validation failed",
		FieldErrors: fieldErrors,
	})
}
