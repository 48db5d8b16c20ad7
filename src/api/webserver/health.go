package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

type Health struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealth(db *gorm.DB, rdb *redis.Client) Health {
	return Health{db: db, rdb: rdb}
}

func (h Health) Check(c *gin.Context) {
	dbOK := false
	if sqlDB, err := h.db.DB(); err == nil {
		dbOK = sqlDB.PingContext(c) == nil
	}
	cacheOK := h.rdb != nil && h.rdb.Ping(c).Err() == nil

	components := gin.H{
		"database":     dbOK,
		"cache":        cacheOK,
		"fact_checker": true,
	}

	status := "healthy"
	if !dbOK || !cacheOK {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"version":    apiVersion,
		"components": components,
	})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Verilens fact-checking API",
		"version": apiVersion,
		"endpoints": gin.H{
			"analyze":        "POST /analyze - Analyze text for factual claims",
			"analyze_url":    "POST /analyze_url - Analyze URL for factual claims",
			"verify_claim":   "POST /api/verify_claim - Verify a single claim",
			"claims":         "GET /api/claims - List verified claims",
			"similar_claims": "POST /similar_claims - Find similar claims",
			"health":         "GET /health - Check API health",
			"token":          "POST /token - Get authentication token",
		},
	})
}
