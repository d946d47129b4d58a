package service

import (
	"context"
	"io"

	"github.com/kudipay/billing-be/internal/analytics"
	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/pkg/logger"
)

// TransactionWithAlerts is a list row for the admin view: the record plus
// any fraud alerts its rules matched.
type TransactionWithAlerts struct {
	domain.TransactionRecord
	Alerts []string `json:"alerts,omitempty"`
}

type TransactionService interface {
	// ImportDump streams a processor transaction dump onto the event bus
	// and returns how many rows were queued.
	ImportDump(ctx context.Context, reader io.Reader) (int, error)

	List(ctx context.Context, filter domain.TransactionFilter, page, perPage int) ([]TransactionWithAlerts, int, error)
	Summary(ctx context.Context, filter domain.TransactionFilter) (analytics.Stats, error)
}

type transactionService struct {
	repo     domain.TransactionRepository
	importer DumpImporter
	logger   *logger.Logger
}

func NewTransactionService(repo domain.TransactionRepository, importer DumpImporter, log *logger.Logger) TransactionService {
	return &transactionService{
		repo:     repo,
		importer: importer,
		logger:   log,
	}
}

func (s *transactionService) ImportDump(ctx context.Context, reader io.Reader) (int, error) {
	queued, err := s.importer.ImportStream(ctx, reader)
	if err != nil {
		s.logger.Error(ctx, "Transaction dump import failed",
			"error", err,
		)
		return 0, err
	}

	s.logger.Info(ctx, "Transaction dump queued",
		"rows", queued,
	)

	return queued, nil
}

func (s *transactionService) List(ctx context.Context, filter domain.TransactionFilter, page, perPage int) ([]TransactionWithAlerts, int, error) {
	records, total, err := s.repo.ListTransactions(ctx, filter, page, perPage)
	if err != nil {
		s.logger.Error(ctx, "Failed to list transactions",
			"error", err,
		)
		return nil, 0, err
	}

	rows := make([]TransactionWithAlerts, 0, len(records))
	for _, record := range records {
		rows = append(rows, TransactionWithAlerts{
			TransactionRecord: record,
			Alerts:            analytics.DetectFraudAlerts(record),
		})
	}

	return rows, total, nil
}

// Summary aggregates over every record matching the filter, not just one
// page; it pulls the full filtered set in one shot.
func (s *transactionService) Summary(ctx context.Context, filter domain.TransactionFilter) (analytics.Stats, error) {
	const allRecords = 1 << 30

	records, _, err := s.repo.ListTransactions(ctx, filter, 1, allRecords)
	if err != nil {
		s.logger.Error(ctx, "Failed to load transactions for summary",
			"error", err,
		)
		return analytics.Stats{}, err
	}

	return analytics.Summarize(records), nil
}
