package eventbus

import (
	"context"
	"fmt"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/pkg/logger"
)

// TransactionConsumer stores ingested processor transactions for the
// analytics views.
type TransactionConsumer struct {
	repo        domain.TransactionRepository
	ledger      domain.EventLedger
	logger      *logger.Logger
	workerCount int
}

func NewTransactionConsumer(repo domain.TransactionRepository, ledger domain.EventLedger, log *logger.Logger, workerCount int) *TransactionConsumer {
	return &TransactionConsumer{
		repo:        repo,
		ledger:      ledger,
		logger:      log,
		workerCount: workerCount,
	}
}

func (tc *TransactionConsumer) Consume(ctx context.Context, event Event) error {
	processed, err := tc.ledger.IsEventProcessed(ctx, event.ID)
	if err != nil {
		tc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		tc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(TransactionIngestedEvent)
	if !ok {
		tc.logger.Error(ctx, "Invalid payload type for transaction ingested event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type")
	}

	tc.logger.Debug(ctx, "Storing transaction",
		"event_id", event.ID,
		"line_number", payload.LineNumber,
		"status", payload.Record.Status,
		"type", payload.Record.Type,
		"amount", payload.Record.Amount,
	)

	if err := tc.repo.AddTransaction(ctx, payload.Record); err != nil {
		tc.logger.Error(ctx, "Failed to store transaction",
			"event_id", event.ID,
			"line_number", payload.LineNumber,
			"error", err,
		)
		return err
	}

	if err := tc.ledger.MarkEventProcessed(ctx, event.ID); err != nil {
		tc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	return nil
}

func (tc *TransactionConsumer) GetWorkerCount() int {
	return tc.workerCount
}
