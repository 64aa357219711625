// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-health-assistant/internal/config"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/infra/backend"
	"ai-health-assistant/internal/infra/db/sqlite"
	"ai-health-assistant/internal/infra/food"
	"ai-health-assistant/internal/infra/i18n"
	"ai-health-assistant/internal/infra/logging"
	"ai-health-assistant/internal/infra/metrics"
	"ai-health-assistant/internal/infra/ops"
	"ai-health-assistant/internal/infra/store"
	"ai-health-assistant/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, verbose)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}
	metrics.MustRegister()

	// ---- Message catalog ----
	cat, err := i18n.NewCatalog(i18n.LocalesFS, "en")
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	// ---- Storage ----
	tokenStore := store.NewFileTokenStore(cfg.Session.Path)
	weightRepo, err := sqlite.NewWeightRepo(ctx, cfg.Storage.WeightDB)
	if err != nil {
		log.Fatalf("weight db: %v", err)
	}
	defer weightRepo.Close()

	// ---- Backend client ----
	api := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	foodSource := food.NewStaticSource()

	// ---- Use cases ----
	gate := usecase.FeatureGate{}
	sessionUC := usecase.NewSessionUseCase(tokenStore, cfg.Session.TTL, logger)
	chatUC := usecase.NewChatUseCase(sessionUC, gate, api, cat, logger)
	goalUC := usecase.NewGoalUseCase(sessionUC, gate, api, chatUC, cat, logger)
	summaryUC := usecase.NewSummaryUseCase(api, logger)
	weightUC := usecase.NewWeightUseCase(weightRepo, logger)
	entryUC := usecase.NewEntryUseCase(sessionUC, gate, api, weightUC, logger)
	foodUC := usecase.NewFoodUseCase(foodSource)

	// Goal lifecycle follows every session transition.
	sessionUC.OnChange(func(sess model.Session) {
		goalUC.HandleSessionChange(ctx, sess)
	})

	// ---- Ops server (/health, /metrics) ----
	opsSrv := ops.NewServer(cfg.Ops.Addr, logger)
	go func() {
		if err := opsSrv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("ops server stopped")
		}
	}()

	// ---- Startup sequence ----
	chatUC.AppendNotice(cat.T("chat.greeting"))
	sessionUC.Restore()

	// ---- REPL ----
	r := newREPL(api, sessionUC, chatUC, goalUC, summaryUC, weightUC, entryUC, foodUC, cat, logger)
	go r.run(ctx, os.Stdin, os.Stdout)

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigc:
	case <-r.done:
	}
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("ops shutdown")
	}
	cancel()
}
