package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kudipay/billing-be/internal/config"
	"github.com/kudipay/billing-be/internal/eventbus"
	"github.com/kudipay/billing-be/internal/fees"
	"github.com/kudipay/billing-be/internal/flow"
	"github.com/kudipay/billing-be/internal/handler"
	"github.com/kudipay/billing-be/internal/server"
	"github.com/kudipay/billing-be/internal/service"
	"github.com/kudipay/billing-be/internal/storage"
	"github.com/kudipay/billing-be/internal/wallet"
	"github.com/kudipay/billing-be/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	paymentConsumer := eventbus.NewPaymentConsumer(repo, repo, log, cfg.Worker.PoolSize)
	if err := bus.Subscribe(eventbus.EventTypePaymentConfirmation, paymentConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe payment consumer",
			"error", err,
		)
	}

	transactionConsumer := eventbus.NewTransactionConsumer(repo, repo, log, cfg.Worker.PoolSize)
	if err := bus.Subscribe(eventbus.EventTypeTransactionIngested, transactionConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe transaction consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}
	log.Info(ctx, "Event bus started",
		"worker_count", cfg.Worker.PoolSize,
	)

	calculator := fees.NewCalculator(
		fees.Schedule{RateBasisPoints: cfg.Fees.InvoiceRateBasisPoints, Cap: cfg.Fees.InvoiceCap},
		fees.Schedule{RateBasisPoints: cfg.Fees.ReceiptRateBasisPoints, Cap: cfg.Fees.ReceiptCap},
	)

	walletClient := wallet.NewClient(cfg.Wallet.BaseURL, cfg.Wallet.Timeout)

	flowCfg := flow.Config{
		PINLength:   cfg.Flow.PINLength,
		IssuanceFee: cfg.Flow.IssuanceFee,
	}

	documentService := service.NewDocumentService(repo, calculator, walletClient, log, flowCfg)
	dumpImporter := service.NewCSVDumpImporter(bus, log)
	transactionService := service.NewTransactionService(repo, dumpImporter, log)
	log.Info(ctx, "Services initialized")

	documentHandler := handler.NewDocumentHandler(documentService, log)
	transactionHandler := handler.NewTransactionHandler(transactionService, log)
	webhookHandler := handler.NewWebhookHandler(bus, log)
	healthHandler := handler.NewHealthHandler()
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, documentHandler, transactionHandler, webhookHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown in order:
	// 1. Stop accepting new HTTP requests
	log.Info(shutdownCtx, "Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	// 2. Stop event bus and wait for workers to finish
	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
