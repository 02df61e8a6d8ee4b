// Package password はパスワードの一方向ハッシュ化と検証を提供します。
package password

import "golang.org/x/crypto/bcrypt"

// hashCost は bcrypt のコストファクターです。オフライン総当たりを現実的な
// コストで困難にしつつ、ログイン時のレイテンシを許容範囲に収める値です。
const hashCost = 10

// Hash は平文パスワードをソルト付きでハッシュ化します。
// ソルトは毎回ランダムに生成されるため、同じ入力でも結果は毎回異なります。
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify は平文パスワードとハッシュを定数時間で比較します。
// 不一致やハッシュ形式の破損はエラーではなく false として扱います。
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
