package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"jobmatch_backend/internal/app/config"
	"jobmatch_backend/internal/app/di"
	"jobmatch_backend/internal/app/router"
	analysishandler "jobmatch_backend/internal/feature/analysis/transport/handler"
	"jobmatch_backend/internal/platform/logging"
)

func main() {
	cfg := config.Load()

	// ロガー
	closeLog, err := logging.Setup(cfg.LogLevel, cfg.Debug, cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Println("[ERROR] Failed to close log file:", err)
		}
	}()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Usecase
	uc, closeHistory, err := di.NewAnalysisUsecase(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize analysis history", "backend", cfg.History.Backend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeHistory(); err != nil {
			slog.Error("failed to close history store", "error", err)
		}
	}()

	// LLM設定の欠落は起動エラーにせず、リクエストごとに500で報告する
	creds := cfg.Credentials()
	if creds.APIKey == "" {
		slog.Warn("LLM API key is not set; /analyse will answer 500", "provider", creds.Provider)
	}

	// Handler
	analysisH := analysishandler.NewAnalysisHandler(uc, creds)

	// ルータ生成
	historyEnabled := cfg.History.Backend != "" && cfg.History.Backend != config.HistoryNone
	r := router.NewRouter(analysisH, historyEnabled)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", cfg.Addr(), "debug", cfg.Debug, "provider", creds.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
