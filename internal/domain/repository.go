package domain

import "context"

type DocumentRepository interface {
	// Save upserts by Document.ID. The store rejects writes against a
	// document that has left DRAFT.
	Save(ctx context.Context, doc *Document) (*Document, error)
	Get(ctx context.Context, id string) (*Document, error)
	UpdateStatus(ctx context.Context, id string, status DocumentStatus) error

	// ApplyPayment performs the paid-quantity/paid-amount increment
	// atomically inside the store; callers never read-modify-write.
	ApplyPayment(ctx context.Context, id string, amount int64) (*Document, error)
}

type TransactionFilter struct {
	Status *TransactionStatus
	Type   *TransactionType
	UserID string
}

type TransactionRepository interface {
	AddTransaction(ctx context.Context, record TransactionRecord) error
	ListTransactions(ctx context.Context, filter TransactionFilter, page, perPage int) ([]TransactionRecord, int, error)
}

// EventLedger tracks processed event ids so webhook and ingestion
// consumers stay idempotent under redelivery.
type EventLedger interface {
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
