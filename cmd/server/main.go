package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/assistant"
	"github.com/iliyamo/theater-dashboard/internal/config"
	"github.com/iliyamo/theater-dashboard/internal/handler"
	"github.com/iliyamo/theater-dashboard/internal/middleware"
	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/router"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

func main() {
	// .env is a convenience for local runs; in deployment the
	// variables come from the environment itself.
	_ = godotenv.Load()

	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: snapshots and rate limiting disabled, state is memory-only")
	}
	repo := repository.NewSnapshotRepo(rdb)

	st := loadState(repo)

	aiClient := assistant.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, cfg.AITimeout)
	publishEvents := os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""

	authHandler := handler.NewAuthHandler(st, repo, cfg.JWTSecret, cfg.SessionTTLMin)

	e := echo.New()
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled: true,
		Prefix:  "theater:rl",
		Limit:   120,
		Window:  time.Minute,
	}, rdb))

	router.RegisterRoutes(e, authHandler)
	router.RegisterAPI(e, router.Handlers{
		Directors: handler.NewDirectorHandler(st, repo),
		Plays:     handler.NewPlayHandler(st, repo),
		Seats:     handler.NewSeatHandler(st),
		Tickets:   handler.NewTicketHandler(st, repo, publishEvents),
		Dashboard: handler.NewDashboardHandler(st),
		Assistant: handler.NewAssistantHandler(st, aiClient),
		Admin:     handler.NewAdminHandler(st, repo),
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// loadState restores the persisted snapshot or, on first run, seeds
// the collections and persists the result so the next start finds it.
func loadState(repo *repository.SnapshotRepo) *state.State {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := repo.Load(ctx)
	if err == nil {
		log.Printf("restored snapshot: %d directors, %d plays, %d seats, %d tickets",
			len(snap.Directors), len(snap.Plays), len(snap.Seats), len(snap.Tickets))
		return state.NewFromSnapshot(snap)
	}
	if !errors.Is(err, repository.ErrNoSnapshot) {
		log.Fatalf("failed to load snapshot: %v", err)
	}

	st := state.NewFromSeed()
	if repo.Enabled() {
		if err := repo.Save(ctx, st.Snapshot()); err != nil {
			log.Printf("failed to persist seed snapshot: %v", err)
		}
	}
	log.Println("no snapshot found, collections seeded")
	return st
}
