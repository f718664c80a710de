package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"calc-be/api/internal/calc"
	"calc-be/api/internal/config"
	"calc-be/api/internal/handle"
	"calc-be/api/internal/httpserver"
	"calc-be/api/internal/store"
	"calc-be/api/internal/vision/gemini"
)

func main() {
	cfg := config.Load()

	// Prefer platform PORT env var; fallback to cfg.Port
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8900"
	}

	var cache handle.SolveCache
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		log.Printf("db connected, solve cache enabled")
		cache = store.NewSolveRepo(db)
	} else {
		log.Printf("DATABASE_URL not set, solve cache disabled")
	}

	engine := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	solver := calc.NewSolver(engine)
	h := handle.New(solver, cache, cfg.GeminiModel)

	addr := ":" + cfg.Port
	log.Fatal(httpserver.StartHTTP(addr, cfg.Env, h))
}
