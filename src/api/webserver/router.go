package webserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/verilens/verilens/src/api/config"
	"github.com/verilens/verilens/src/factcheck"
)

func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, checker *factcheck.Checker) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	attachRoutes(r, cfg, db, rdb, checker)
	return r
}

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client, checker *factcheck.Checker) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://app.verilens.io"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.JWTSecret)
	authH := NewAuth(db, secret)
	analysisH := NewAnalysis(checker, db)
	claimsH := NewClaims(db)
	healthH := NewHealth(db, rdb)
	limiter := NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)

	r.GET("/", Root)
	r.GET("/health", healthH.Check)
	r.POST("/token", authH.Token)
	r.POST("/api/signup", authH.Signup)
	r.POST("/api/login", authH.Login)
	r.GET("/api/verify-token", authH.VerifyToken)

	secured := r.Group("/")
	secured.Use(JWTMiddleware(secret), RateLimitMiddleware(limiter))
	{
		secured.POST("/analyze", analysisH.Analyze)
		secured.POST("/analyze_url", analysisH.AnalyzeURL)
		secured.POST("/api/verify_claim", analysisH.VerifyClaim)
		secured.GET("/api/claims", claimsH.List)
		secured.POST("/similar_claims", claimsH.Similar)
	}
}
