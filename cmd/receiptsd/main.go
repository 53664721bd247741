// receiptsd serves the receipt processing API: Drive folder listing, batch
// processing, review edits and XLSX export.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receipts-digest/internal/common"
	"receipts-digest/internal/drive"
	"receipts-digest/internal/export"
	"receipts-digest/internal/pdftext"
	"receipts-digest/internal/pipeline"
	"receipts-digest/internal/repository"
	"receipts-digest/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, driver, err := repository.Open(ctx, repository.Config{
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open review store", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	receipts := repository.NewReceiptRepository(db, driver, logger)

	var source pipeline.Source
	if cfg.Drive.APIKey != "" {
		client, err := drive.NewClient(ctx, cfg.Drive.APIKey, logger)
		if err != nil {
			logger.Error("failed to create drive client", "error", err)
			os.Exit(1)
		}
		source = client
	} else {
		logger.Warn("DRIVE_API_KEY is not set, drive endpoints are disabled")
	}

	processor := pipeline.NewProcessor(source, pdftext.NewConverter(), logger,
		pipeline.WithWorkers(cfg.Batch.Workers))
	exporter := export.NewService(logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewServer(source, processor, receipts, exporter, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
