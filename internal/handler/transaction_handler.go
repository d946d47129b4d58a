package handler

import (
	"net/http"
	"strconv"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/service"
	"github.com/kudipay/billing-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	service service.TransactionService
	logger  *logger.Logger
}

func NewTransactionHandler(service service.TransactionService, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  log,
	}
}

func (h *TransactionHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling transaction dump import")

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	queued, err := h.service.ImportDump(ctx, src)
	if err != nil {
		h.logger.Error(ctx, "Failed to import transaction dump",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "failed to import transaction dump",
		})
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"queued": queued,
		"status": "processing",
	})
}

func (h *TransactionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	filter, badParam := parseFilter(c)
	if badParam != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": badParam,
		})
	}

	rows, total, err := h.service.List(ctx, filter, page, perPage)
	if err != nil {
		h.logger.Error(ctx, "Failed to list transactions",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list transactions",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": rows,
		"page":         page,
		"per_page":     perPage,
		"total":        total,
	})
}

func (h *TransactionHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	filter, badParam := parseFilter(c)
	if badParam != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": badParam,
		})
	}

	stats, err := h.service.Summary(ctx, filter)
	if err != nil {
		h.logger.Error(ctx, "Failed to summarize transactions",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to summarize transactions",
		})
	}

	return c.JSON(http.StatusOK, stats)
}

func parseFilter(c echo.Context) (domain.TransactionFilter, string) {
	filter := domain.TransactionFilter{
		UserID: c.QueryParam("user_id"),
	}

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := domain.TransactionStatus(statusParam)
		switch status {
		case domain.TransactionStatusSuccess, domain.TransactionStatusFailed,
			domain.TransactionStatusPending, domain.TransactionStatusProcessing:
			filter.Status = &status
		default:
			return filter, "status must be success, failed, pending or processing"
		}
	}

	if typeParam := c.QueryParam("type"); typeParam != "" {
		txType := domain.TransactionType(typeParam)
		filter.Type = &txType
	}

	return filter, ""
}
