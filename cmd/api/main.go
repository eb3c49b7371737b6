package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finsight/finsight-backend/internal/advisor"
	"github.com/finsight/finsight-backend/internal/api"
	"github.com/finsight/finsight-backend/internal/auth"
	"github.com/finsight/finsight-backend/internal/config"
	"github.com/finsight/finsight-backend/internal/db"
	"github.com/finsight/finsight-backend/internal/logger"
	"github.com/finsight/finsight-backend/internal/metrics"
	"github.com/finsight/finsight-backend/internal/repository/postgres"
	"github.com/finsight/finsight-backend/internal/services"
	"github.com/finsight/finsight-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, 15*time.Minute, 7*24*time.Hour)
	adv := advisor.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, advisor features degraded")
	}

	deps := api.Deps{
		Cfg:        cfg,
		TM:         tm,
		UserSvc:    services.NewUserService(repos.Users, tm),
		BudgetSvc:  services.NewBudgetService(repos.Budgets, repos.Incomes, repos.Expenses),
		ProfileSvc: services.NewProfileService(repos.Profiles, repos.Budgets),
		RiskSvc:    services.NewRiskService(repos.Budgets, repos.Profiles),
		GoalSvc:    services.NewGoalService(repos.Goals, repos.Budgets, repos.Profiles, adv),
		ChatSvc:    services.NewChatService(repos.ChatMessages, repos.Budgets, adv, wp),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
