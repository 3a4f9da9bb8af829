package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"tagsmith/internal/http/handlers"
	httpapi "tagsmith/internal/http/httpapi"
	"tagsmith/internal/infra"
	"tagsmith/internal/infra/geoip"
	"tagsmith/internal/metrics"
	"tagsmith/internal/tagger"
	"tagsmith/internal/vocabulary"
)

func main() {
	// .env files are optional; values already in the environment win
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *vocabulary.Store
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		store = vocabulary.NewStore(infra.NewSQLRunner(pool, logger))
	}

	vocab, err := vocabulary.Resolve(ctx, cfg.VocabularyPath, store)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load vocabulary")
	}
	opts, err := cfg.TaggerOptions()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid generator options")
	}
	generator := tagger.New(vocab, opts)
	logger.Info().
		Int("categories", len(vocab.Categories)).
		Int("materials", len(vocab.Materials)).
		Str("score_policy", cfg.ScorePolicy).
		Bool("database", store != nil).
		Msg("vocabulary loaded")

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	rec := metrics.New()
	app := handlers.NewApp(logger, generator, vocab, rec)
	app.MaxBodyBytes = cfg.MaxRequestBytes

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   resolver.Lookup(),
		MetricsHandler:  rec.Handler(),
	})
	server := infra.NewHTTPServer(cfg, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
