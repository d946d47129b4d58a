package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/eventbus"
	"github.com/kudipay/billing-be/pkg/logger"
)

type DumpImporter interface {
	ImportStream(ctx context.Context, reader io.Reader) (int, error)
}

// CSVDumpImporter streams processor transaction dumps row by row onto the
// event bus. Expected columns:
//
//	id,user_id,type,amount,fee,status,created_at,reference
//
// with amounts in kobo and created_at as a unix timestamp. Malformed rows
// are logged and skipped; a dump where nothing parses is an error.
type CSVDumpImporter struct {
	eventBus eventbus.EventBus
	logger   *logger.Logger
}

func NewCSVDumpImporter(bus eventbus.EventBus, log *logger.Logger) *CSVDumpImporter {
	return &CSVDumpImporter{
		eventBus: bus,
		logger:   log,
	}
}

func (p *CSVDumpImporter) ImportStream(ctx context.Context, reader io.Reader) (int, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true // Optimize memory usage
	csvReader.TrimLeadingSpace = true

	lineNumber := 0
	queuedCount := 0
	errorCount := 0

	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logger.Error(ctx, "Failed to read CSV line",
				"line", lineNumber,
				"error", err,
			)
			errorCount++
			continue
		}

		lineNumber++

		record, err := p.parseRecord(row)
		if err != nil {
			p.logger.Warn(ctx, "Failed to parse transaction row",
				"line", lineNumber,
				"error", err,
			)
			errorCount++
			continue
		}

		event := eventbus.Event{
			ID:   fmt.Sprintf("ingest-%s-%d", record.ID, lineNumber),
			Type: eventbus.EventTypeTransactionIngested,
			Payload: eventbus.TransactionIngestedEvent{
				Record:     record,
				LineNumber: lineNumber,
			},
			Timestamp: time.Now(),
		}

		if err := p.eventBus.Publish(ctx, event); err != nil {
			p.logger.Error(ctx, "Failed to publish event",
				"event_id", event.ID,
				"line", lineNumber,
				"error", err,
			)
			errorCount++
			continue
		}

		queuedCount++
	}

	p.logger.Info(ctx, "Transaction dump processed",
		"total_lines", lineNumber,
		"queued_count", queuedCount,
		"error_count", errorCount,
	)

	if errorCount > 0 && queuedCount == 0 {
		return 0, fmt.Errorf("no parsable rows in dump (%d errors)", errorCount)
	}

	return queuedCount, nil
}

func (p *CSVDumpImporter) parseRecord(row []string) (domain.TransactionRecord, error) {
	if len(row) != 8 {
		return domain.TransactionRecord{}, fmt.Errorf("invalid record format: expected 8 fields, got %d", len(row))
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("invalid amount: %w", err)
	}

	fee, err := strconv.ParseInt(strings.TrimSpace(row[4]), 10, 64)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("invalid fee: %w", err)
	}

	createdAt, err := strconv.ParseInt(strings.TrimSpace(row[6]), 10, 64)
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("invalid created_at: %w", err)
	}

	status := domain.TransactionStatus(strings.TrimSpace(strings.ToLower(row[5])))
	switch status {
	case domain.TransactionStatusSuccess, domain.TransactionStatusFailed,
		domain.TransactionStatusPending, domain.TransactionStatusProcessing:
	default:
		return domain.TransactionRecord{}, fmt.Errorf("invalid status: %s", row[5])
	}

	txType := domain.TransactionType(strings.TrimSpace(strings.ToLower(row[2])))
	if txType == "" {
		return domain.TransactionRecord{}, fmt.Errorf("transaction type is required")
	}

	return domain.TransactionRecord{
		ID:        strings.TrimSpace(row[0]),
		UserID:    strings.TrimSpace(row[1]),
		Type:      txType,
		Amount:    amount,
		Fee:       fee,
		Status:    status,
		CreatedAt: time.Unix(createdAt, 0),
		Reference: strings.TrimSpace(row[7]),
	}, nil
}
