package eventbus

import (
	"time"

	"github.com/kudipay/billing-be/internal/domain"
)

type EventType string

const (
	EventTypePaymentConfirmation EventType = "payment.confirmation"
	EventTypeTransactionIngested EventType = "transaction.ingested"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// PaymentConfirmationEvent is one external payer's confirmed payment,
// delivered by the processor webhook. Reference is the processor's
// idempotency key; redeliveries with the same reference apply once.
type PaymentConfirmationEvent struct {
	DocumentID string `json:"document_id"`
	Amount     int64  `json:"amount"`
	Reference  string `json:"reference"`
}

type TransactionIngestedEvent struct {
	Record     domain.TransactionRecord `json:"record"`
	LineNumber int                      `json:"line_number"`
}
