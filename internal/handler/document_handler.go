package handler

import (
	"errors"
	"net/http"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/flow"
	"github.com/kudipay/billing-be/internal/service"
	"github.com/kudipay/billing-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type DocumentHandler struct {
	service service.DocumentService
	logger  *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  log,
	}
}

type draftResponse struct {
	Document *domain.Document `json:"document"`
	Totals   domain.Totals    `json:"totals"`
}

func (h *DocumentHandler) SaveDraft(c echo.Context) error {
	ctx := c.Request().Context()

	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid document payload",
		})
	}

	switch doc.Type {
	case domain.DocumentTypeInvoice, domain.DocumentTypeReceipt:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "type must be INVOICE or RECEIPT",
		})
	}

	if doc.FeePolicy == "" {
		doc.FeePolicy = domain.FeePolicyAbsorbedByIssuer
	}

	saved, totals, err := h.service.SaveDraft(ctx, &doc)
	if err != nil {
		return h.writeError(c, err, "failed to save draft")
	}

	return c.JSON(http.StatusOK, draftResponse{
		Document: saved,
		Totals:   totals,
	})
}

type generateRequest struct {
	PIN string `json:"pin"`
}

func (h *DocumentHandler) Generate(c echo.Context) error {
	ctx := c.Request().Context()
	documentID := c.Param("id")

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request payload",
		})
	}

	generated, err := h.service.Generate(ctx, documentID, req.PIN)
	if err != nil {
		return h.writeError(c, err, "failed to generate document")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"document": generated,
	})
}

func (h *DocumentHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	documentID := c.Param("id")

	doc, err := h.service.Get(ctx, documentID)
	if err != nil {
		return h.writeError(c, err, "failed to get document")
	}

	return c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) PaymentStatus(c echo.Context) error {
	ctx := c.Request().Context()
	documentID := c.Param("id")

	progress, err := h.service.PaymentProgress(ctx, documentID)
	if err != nil {
		return h.writeError(c, err, "failed to get payment status")
	}

	return c.JSON(http.StatusOK, progress)
}

func (h *DocumentHandler) Expire(c echo.Context) error {
	ctx := c.Request().Context()
	documentID := c.Param("id")

	if err := h.service.Expire(ctx, documentID); err != nil {
		return h.writeError(c, err, "failed to expire document")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"id":     documentID,
		"status": string(domain.DocumentStatusExpired),
	})
}

func (h *DocumentHandler) writeError(c echo.Context, err error, fallback string) error {
	ctx := c.Request().Context()

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":      "validation failed",
			"violations": validationErr.Violations,
		})
	}

	var paymentErr *domain.PaymentError
	if errors.As(err, &paymentErr) {
		return c.JSON(http.StatusPaymentRequired, map[string]string{
			"error": paymentErr.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "document not found",
		})
	case errors.Is(err, domain.ErrDocumentImmutable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrPaymentTargetReached):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": err.Error(),
		})
	case errors.Is(err, flow.ErrInvalidPIN):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	h.logger.Error(ctx, fallback,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": fallback,
	})
}
