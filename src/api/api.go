package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/verilens/verilens/src/api/config"
	"github.com/verilens/verilens/src/api/data"
	"github.com/verilens/verilens/src/api/types"
	"github.com/verilens/verilens/src/api/webserver"
	"github.com/verilens/verilens/src/factcheck"
)

var allModels = []interface{}{
	&types.User{}, &types.FactCheck{}, &types.ClaimEvidence{},
}

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func main() {
	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	migrate(db)

	rdb := data.MustRedis(cfg.RedisURL)

	if cfg.SerperKey == "" {
		log.Printf("warning: SERPER_API_KEY not set, evidence gathering disabled")
	}
	if cfg.GeminiKey == "" {
		log.Printf("warning: GOOGLE_API_KEY not set, primary judge disabled")
	}
	if cfg.OpenAIKey == "" {
		log.Printf("warning: OPENAI_API_KEY not set, cross-check disabled")
	}

	checker := factcheck.NewChecker(
		factcheck.NewSerperClient(cfg.SerperKey),
		factcheck.NewGeminiJudge(cfg.GeminiKey),
		factcheck.NewOpenAICrossChecker(cfg.OpenAIKey),
		factcheck.NewRedisCache(rdb),
	)

	router := webserver.New(cfg, db, rdb, checker)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("Verilens API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
