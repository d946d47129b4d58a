package payments

import (
	"context"
	"time"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/pkg/logger"
)

// Watcher re-fetches a document's payment progress on a fixed interval for
// a bounded duration, then stops. This is a client-side polling budget, not
// a delivery guarantee; the webhook path remains the source of truth.
type Watcher struct {
	repo     domain.DocumentRepository
	logger   *logger.Logger
	interval time.Duration
	timeout  time.Duration
}

func NewWatcher(repo domain.DocumentRepository, log *logger.Logger, interval, timeout time.Duration) *Watcher {
	return &Watcher{
		repo:     repo,
		logger:   log,
		interval: interval,
		timeout:  timeout,
	}
}

// Watch polls until the document reaches a terminal status, the polling
// budget runs out, or ctx is cancelled. onUpdate fires once per fetch.
func (w *Watcher) Watch(ctx context.Context, documentID string, onUpdate func(domain.PaymentProgress)) error {
	ctx = logger.WithDocumentID(ctx, documentID)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	deadline := time.NewTimer(w.timeout)
	defer deadline.Stop()

	w.logger.Debug(ctx, "Payment watch started",
		"interval", w.interval.String(),
		"timeout", w.timeout.String(),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			w.logger.Debug(ctx, "Payment watch budget exhausted")
			return nil
		case <-ticker.C:
			doc, err := w.repo.Get(ctx, documentID)
			if err != nil {
				w.logger.Error(ctx, "Failed to fetch payment progress",
					"error", err,
				)
				return err
			}

			progress := ProgressOf(doc)
			if onUpdate != nil {
				onUpdate(progress)
			}

			if doc.IsTerminal() {
				w.logger.Debug(ctx, "Payment watch finished",
					"status", doc.Status,
				)
				return nil
			}
		}
	}
}
