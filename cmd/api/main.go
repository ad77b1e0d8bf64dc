package main

import (
	"context"
	"log"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/config"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/database"
	httpserver "github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/http"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/llm"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/services"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.DSN)

	resolver := rbac.NewResolver(db)

	var gen llm.Generator
	client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("⚠️ Gemini client unavailable, analyses will be degraded: %v", err)
	} else {
		gen = client
		log.Printf("✅ Gemini client ready (model %s)", cfg.GeminiModel)
	}
	analyzer := llm.NewAnalyzer(gen)

	audit := services.NewAuditService(db)

	router := httpserver.NewRouter(httpserver.Deps{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		Resolver:  resolver,

		Shortlist:  services.NewShortlistService(db, analyzer, cfg.GeminiModel, cfg.ShortlistRPS, cfg.ShortlistWorkers),
		Jobs:       services.NewJobService(db),
		Candidates: services.NewCandidateService(db, audit),
		Members:    services.NewMemberService(db, audit),
	})

	log.Printf("🚀 Server listening on :%s", cfg.AppPort)
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
