package server

import (
	"context"
	"fmt"

	"github.com/kudipay/billing-be/internal/config"
	"github.com/kudipay/billing-be/internal/handler"
	"github.com/kudipay/billing-be/internal/middleware"
	"github.com/kudipay/billing-be/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo               *echo.Echo
	cfg                *config.Config
	logger             *logger.Logger
	documentHandler    *handler.DocumentHandler
	transactionHandler *handler.TransactionHandler
	webhookHandler     *handler.WebhookHandler
	healthHandler      *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	documentHandler *handler.DocumentHandler,
	transactionHandler *handler.TransactionHandler,
	webhookHandler *handler.WebhookHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:               e,
		cfg:                cfg,
		logger:             log,
		documentHandler:    documentHandler,
		transactionHandler: transactionHandler,
		webhookHandler:     webhookHandler,
		healthHandler:      healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/documents", s.documentHandler.SaveDraft)
	s.echo.POST("/documents/:id/generate", s.documentHandler.Generate)
	s.echo.GET("/documents/:id", s.documentHandler.Get)
	s.echo.GET("/documents/:id/payment-status", s.documentHandler.PaymentStatus)
	s.echo.POST("/documents/:id/expire", s.documentHandler.Expire)

	s.echo.POST("/webhooks/payments", s.webhookHandler.PaymentConfirmation)

	s.echo.POST("/transactions/import", s.transactionHandler.Import)
	s.echo.GET("/transactions", s.transactionHandler.List)
	s.echo.GET("/transactions/summary", s.transactionHandler.Summary)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
