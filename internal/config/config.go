// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供します。
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Env はデプロイ環境の種別です。クッキー属性や CORS の挙動を切り替えます。
type Env string

const (
	// EnvDevelopment はローカル開発環境です。
	EnvDevelopment Env = "development"
	// EnvProduction は本番環境です。
	EnvProduction Env = "production"
	// EnvTest はテスト環境です。
	EnvTest Env = "test"
)

// Config はアプリケーションの設定を保持する構造体です。
type Config struct {
	// アプリケーション設定
	Env       Env    // デプロイ環境 (development, production, test)
	JWTSecret string // トークン署名用の秘密鍵

	// サーバー設定
	Port string // APIサーバーのポート番号

	// クッキー設定
	CookieDomain string // 本番環境でのみクッキーに設定するドメイン

	// CORS設定
	CORSAllowedOrigins string // 本番環境の CORS 許可オリジン（カンマ区切り）

	// ストア設定
	StoreRedisURL string // ユーザーストア用 Redis 接続URL（空ならインメモリストア）
}

// Load は環境変数から設定を読み込みます。
// .env.local ファイルが存在する場合はそこから読み込みます。
func Load() (*Config, error) {
	loadEnvFile()

	config := &Config{
		Env:                Env(getEnv("APP_ENV", string(EnvDevelopment))),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		Port:               getEnv("PORT", "3001"),
		CookieDomain:       getEnv("COOKIE_DOMAIN", ""),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
		StoreRedisURL:      getEnv("STORE_REDIS_URL", ""),
	}

	// 必須設定のバリデーション
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	if err := godotenv.Load(".env.local"); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, ".env.local"))
}

// Validate は設定の妥当性を検証します。
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("APP_ENV must be development, production or test, got %q", c.Env)
	}

	// ローカル開発ではデフォルト値で動かせるようにし、本番環境では厳格にチェックする
	if c.Env == EnvProduction {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.StoreRedisURL == "" {
			return fmt.Errorf("STORE_REDIS_URL is required in production")
		}
		if c.CORSAllowedOrigins == "" {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS is required in production")
		}
	}

	if c.JWTSecret == "" {
		// 開発・テスト環境用のフォールバック。本番では上のチェックで弾かれる。
		c.JWTSecret = "dev-insecure-secret"
	}

	return nil
}

// IsProduction は本番環境かどうかを返します。
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します。
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
