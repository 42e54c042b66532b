package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/hoopsim/league-service/internal/config"
	"github.com/hoopsim/league-service/internal/handler"
	"github.com/hoopsim/league-service/internal/logger"
	"github.com/hoopsim/league-service/internal/repository/mongodb"
	"github.com/hoopsim/league-service/internal/service"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	store, err := mongodb.New(context.Background(), cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Document store connection failed: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			appLogger.Error().Err(err).Msg("store close failed")
		}
	}()

	teams := mongodb.NewTeamRepository(store)
	players := mongodb.NewPlayerRepository(store)
	coaches := mongodb.NewCoachRepository(store)
	matches := mongodb.NewMatchRepository(store)
	archive := mongodb.NewArchiveRepository(store)
	logs := mongodb.NewPossessionRepository(store)
	standings := mongodb.NewStandingsRepository(store)

	clock := clockwork.NewRealClock()
	teamSvc := service.NewTeamService(teams, players, coaches, clock, appLogger)
	playerSvc := service.NewPlayerService(players, clock, appLogger)
	coachSvc := service.NewCoachService(coaches, clock, appLogger)
	standingsSvc := service.NewStandingsService(standings, teams, clock, appLogger)
	matchSvc := service.NewMatchService(matches, archive, logs, teams, standingsSvc, nil, cfg.Sim.Possessions, clock, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler.Register(router, store, teamSvc, playerSvc, coachSvc, matchSvc, standingsSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("forced shutdown")
	}
}
