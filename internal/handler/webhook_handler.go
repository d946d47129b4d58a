package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kudipay/billing-be/internal/eventbus"
	"github.com/kudipay/billing-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

// WebhookHandler accepts payment confirmations from the payment processor
// and hands them to the event bus. It acknowledges fast; application
// happens on the consumer side, idempotently by processor reference.
type WebhookHandler struct {
	eventBus eventbus.EventBus
	logger   *logger.Logger
}

func NewWebhookHandler(bus eventbus.EventBus, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		eventBus: bus,
		logger:   log,
	}
}

type paymentWebhookRequest struct {
	DocumentID string `json:"document_id"`
	Amount     int64  `json:"amount"`
	Reference  string `json:"reference"`
}

func (h *WebhookHandler) PaymentConfirmation(c echo.Context) error {
	ctx := c.Request().Context()

	var req paymentWebhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid webhook payload",
		})
	}

	if req.DocumentID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "document_id is required",
		})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "amount must be greater than zero",
		})
	}

	event := eventbus.Event{
		ID:   uuid.New().String(),
		Type: eventbus.EventTypePaymentConfirmation,
		Payload: eventbus.PaymentConfirmationEvent{
			DocumentID: req.DocumentID,
			Amount:     req.Amount,
			Reference:  req.Reference,
		},
		Timestamp: time.Now(),
	}

	if err := h.eventBus.Publish(ctx, event); err != nil {
		h.logger.Error(ctx, "Failed to publish payment confirmation",
			"document_id", req.DocumentID,
			"reference", req.Reference,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to accept payment confirmation",
		})
	}

	h.logger.Info(ctx, "Payment confirmation accepted",
		"document_id", req.DocumentID,
		"reference", req.Reference,
		"amount", req.Amount,
	)

	return c.JSON(http.StatusAccepted, map[string]string{
		"status": "accepted",
	})
}
