package auth

import (
	"net/mail"
	"strings"
	"unicode"
)

const (
	minPasswordLength = 6

	msgEmailInvalid     = "Valid email is required"
	msgPasswordWeak     = "Password must be at least 6 characters with uppercase, lowercase and number"
	msgPasswordRequired = "Password is required"
)

// normalizeEmail はメールアドレスを小文字化・トリムして正規化します。
// 検索・保存の前に必ず適用します。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// 表示名付きなどの装飾を弾き、アドレス単体のみ許可する
	return addr.Address == email
}

// isStrongPassword は登録時のパスワード強度チェックです。
// 6 文字以上かつ小文字・大文字・数字を各 1 文字以上含むこと。
func isStrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// validateRegister は登録リクエストを検証し、ルール宣言順のフィールドエラーを返します。
// email は正規化済みであることを前提とします。
func validateRegister(email, password string) []map[string]string {
	var fieldErrors []map[string]string
	if !isValidEmail(email) {
		fieldErrors = append(fieldErrors, map[string]string{"email": msgEmailInvalid})
	}
	if !isStrongPassword(password) {
		fieldErrors = append(fieldErrors, map[string]string{"password": msgPasswordWeak})
	}
	return fieldErrors
}

// validateLogin はログインリクエストを検証します。
// 強度チェックは作成時のみで、ログイン時はパスワードが空でないことだけを見ます。
func validateLogin(email, password string) []map[string]string {
	var fieldErrors []map[string]string
	if !isValidEmail(email) {
		fieldErrors = append(fieldErrors, map[string]string{"email": msgEmailInvalid})
	}
	if strings.TrimSpace(password) == "" {
		fieldErrors = append(fieldErrors, map[string]string{"password": msgPasswordRequired})
	}
	return fieldErrors
}
