package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"artprize/internal/api/middleware"
	"artprize/internal/api/routes"
	"artprize/internal/config"
	"artprize/internal/core/artworks"
	"artprize/internal/core/captcha"
	"artprize/internal/core/leaderboard"
	"artprize/internal/core/votes"
	postgresRepo "artprize/internal/db/postgres"
	"artprize/internal/tezos"
)

func main() {
	// Load .env from CWD if present; otherwise use environment as-is
	if _, statErr := os.Stat(".env"); statErr == nil {
		_ = godotenv.Load(".env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	log.Println("Config:", cfg)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	log.Println("Connected to votes database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: ", err)
	}
	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations completed successfully")

	// Allow-list: curated contest round, optionally overridden from JSON
	allowlist := artworks.Default()
	if cfg.AllowlistPath != "" {
		allowlist, err = artworks.LoadFile(cfg.AllowlistPath)
		if err != nil {
			log.Fatal("Failed to load allow-list: ", err)
		}
	}
	log.Printf("Allow-list loaded: %d eligible artworks", allowlist.Size())

	// External collaborators
	verifier := captcha.NewVerifier(cfg.RecaptchaVerifyURL, cfg.RecaptchaSecret, cfg.RecaptchaMinScore, cfg.RecaptchaAction)
	resolver := tezos.NewClient(cfg.TezosAPIURL)

	// Repositories and services
	voteRepo := postgresRepo.NewVoteRepository(db)
	voteService := votes.NewVoteService(voteRepo, verifier, allowlist, cfg.VotingDeadline)
	leaderboardService := leaderboard.NewLeaderboardService(voteRepo, resolver, allowlist)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 60 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(60, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	routes.RegisterVoteRoutes(r, voteService)
	routes.RegisterArtworkRoutes(r, leaderboardService)
	routes.RegisterCaptchaRoutes(r, verifier)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	fmt.Printf("Art prize voting backend starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
