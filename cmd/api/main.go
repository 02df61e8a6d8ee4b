// Package main はAPIサーバーのエントリーポイントです。
package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/auth-api/internal/auth"
	"github.com/yourusername/auth-api/internal/config"
	"github.com/yourusername/auth-api/internal/token"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ginのモードを設定
	gin.SetMode(ginMode(cfg.Env))

	// Ginルーターの初期化（デフォルトミドルウェア: Logger, Recovery）
	router := gin.Default()

	// CORSミドルウェアの設定（資格情報付きリクエストを許可するため
	// オリジンは環境ごとの許可リストで制御する）
	router.Use(cors.New(corsConfig(cfg)))

	// ユーザーストアの構築（Redis 設定があれば Redis、なければインメモリ）
	store, err := setupStore(cfg)
	if err != nil {
		log.Fatalf("Failed to set up user store: %v", err)
	}

	// 署名鍵は起動時に一度だけ読み込み、トークンサービスに明示的に渡す
	tokens := token.NewService([]byte(cfg.JWTSecret), store, log.Default())
	authManager := auth.NewManager(cfg, store, tokens, log.Default())

	// ルーティングの設定
	setupRoutes(router, authManager)

	// サーバーの起動
	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s (env: %s)", addr, cfg.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ginMode はデプロイ環境を Gin の実行モードに対応付けます。
func ginMode(env config.Env) string {
	switch env {
	case config.EnvProduction:
		return gin.ReleaseMode
	case config.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// corsConfig は環境ごとの CORS 設定を組み立てます。
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowCredentials = true
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	switch cfg.Env {
	case config.EnvProduction:
		c.AllowOrigins = splitOrigins(cfg.CORSAllowedOrigins)
	case config.EnvTest:
		// テスト環境では全オリジンを許可する
		c.AllowOriginFunc = func(origin string) bool { return true }
	default:
		// 開発環境は Next.js 開発サーバーと API サーバー自身のみ
		c.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:3001",
		}
	}
	return c
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// handleHealth はヘルスチェックエンドポイントのハンドラーです。
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "auth-api",
		"version": "0.1.0",
	})
}

// setupRoutes は認証エンドポイントの配線を行います。
func setupRoutes(router *gin.Engine, authManager *auth.Manager) {
	// まずは誰でも叩けるヘルスチェックを登録
	router.GET("/health", handleHealth)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authManager.Register)
		authRoutes.POST("/login", authManager.Login)
		authRoutes.POST("/logout", authManager.Logout)
		authRoutes.GET("/me", authManager.RequireAuth(), authManager.Me)
	}
}
