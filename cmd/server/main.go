package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/handler"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/ratelimit"
	"github.com/akwaabahomes/passcheck/internal/server"
	"github.com/akwaabahomes/passcheck/internal/service"
	"github.com/akwaabahomes/passcheck/internal/store"
	"github.com/akwaabahomes/passcheck/internal/workers"
	"github.com/akwaabahomes/passcheck/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("passcheck-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("passcheck-server", cfg.App.LogLevel)
	ctx := context.Background()

	m := metrics.New("passcheck")

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	source, err := store.NewDictionarySource(ctx, cfg.Dictionary.Source, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dictionary source")
	}
	dict, err := source.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading dictionary")
	}
	words, patterns := dict.Size()
	log.Info().Int("words", words).Int("patterns", patterns).Msg("dictionary loaded")

	limiter, closeLimiter, err := ratelimit.New(ctx, cfg.Server.RateLimit, cfg.Storage.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	defer func() {
		if err := closeLimiter(); err != nil {
			log.Err(err).Msg("error closing rate limiter")
		}
	}()
	if limiter != nil {
		log.Info().Str("backend", limiter.Backend()).Int("requests", cfg.Server.RateLimit.Requests).Dur("window", cfg.Server.RateLimit.Window).Msg("rate limiting enabled")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(store.NewStorages(db, log), dict, cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, limiter, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workers.NewWorkers(services, limiter, cfg.Workers, log).Run(workersCtx)
	}()

	runErr := srv.RunServer(ctx)

	stopWorkers()
	wg.Wait()

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
