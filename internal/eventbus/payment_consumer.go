package eventbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/pkg/logger"
)

// PaymentConsumer applies confirmed payments to documents. It is idempotent
// by processor reference, so webhook redeliveries and bus retries never
// double-count a payer.
type PaymentConsumer struct {
	repo        domain.DocumentRepository
	ledger      domain.EventLedger
	logger      *logger.Logger
	workerCount int
}

func NewPaymentConsumer(repo domain.DocumentRepository, ledger domain.EventLedger, log *logger.Logger, workerCount int) *PaymentConsumer {
	return &PaymentConsumer{
		repo:        repo,
		ledger:      ledger,
		logger:      log,
		workerCount: workerCount,
	}
}

func (pc *PaymentConsumer) Consume(ctx context.Context, event Event) error {
	payload, ok := event.Payload.(PaymentConfirmationEvent)
	if !ok {
		pc.logger.Error(ctx, "Invalid payload type for payment confirmation event",
			"event_id", event.ID,
		)
		return fmt.Errorf("invalid payload type")
	}

	dedupeKey := payload.Reference
	if dedupeKey == "" {
		dedupeKey = event.ID
	}

	processed, err := pc.ledger.IsEventProcessed(ctx, dedupeKey)
	if err != nil {
		pc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		pc.logger.Debug(ctx, "Payment already applied, skipping",
			"event_id", event.ID,
			"reference", payload.Reference,
		)
		return nil
	}

	ctx = logger.WithDocumentID(ctx, payload.DocumentID)

	_, err = pc.repo.ApplyPayment(ctx, payload.DocumentID, payload.Amount)
	if err != nil {
		// A reached target or terminal document won't change on retry.
		if errors.Is(err, domain.ErrPaymentTargetReached) || errors.Is(err, domain.ErrDocumentNotPayable) {
			pc.logger.Warn(ctx, "Dropping payment for non-payable document",
				"event_id", event.ID,
				"reference", payload.Reference,
				"error", err,
			)
			return nil
		}

		pc.logger.Error(ctx, "Failed to apply payment",
			"event_id", event.ID,
			"reference", payload.Reference,
			"error", err,
		)
		return err
	}

	if err := pc.ledger.MarkEventProcessed(ctx, dedupeKey); err != nil {
		pc.logger.Error(ctx, "Failed to mark payment event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	pc.logger.Info(ctx, "Payment applied",
		"event_id", event.ID,
		"reference", payload.Reference,
		"amount", payload.Amount,
	)

	return nil
}

func (pc *PaymentConsumer) GetWorkerCount() int {
	return pc.workerCount
}
