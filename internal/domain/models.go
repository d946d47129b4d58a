package domain

import "time"

// All monetary amounts are in kobo.

type DocumentType string

const (
	DocumentTypeInvoice DocumentType = "INVOICE"
	DocumentTypeReceipt DocumentType = "RECEIPT"
)

type DocumentStatus string

const (
	DocumentStatusDraft         DocumentStatus = "DRAFT"
	DocumentStatusUnpaid        DocumentStatus = "UNPAID"
	DocumentStatusPartiallyPaid DocumentStatus = "PARTIALLY_PAID"
	DocumentStatusPaid          DocumentStatus = "PAID"
	DocumentStatusExpired       DocumentStatus = "EXPIRED"
)

type FeePolicy string

const (
	FeePolicyAbsorbedByIssuer FeePolicy = "ABSORBED_BY_ISSUER"
	FeePolicyPaidByCustomer   FeePolicy = "PAID_BY_CUSTOMER"
)

type LineItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// Total clamps negative quantity/price to zero so a malformed item
// contributes nothing instead of corrupting the subtotal.
func (li LineItem) Total() int64 {
	qty := li.Quantity
	if qty < 0 {
		qty = 0
	}
	price := li.UnitPrice
	if price < 0 {
		price = 0
	}
	return qty * price
}

// Totals is derived from a document's items and fee policy. It is
// snapshotted onto the document when the issuer generates it, so every
// payer of a multi-payment document pays the same frozen total.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	FeeAmount int64 `json:"fee_amount"`
	Total     int64 `json:"total"`
}

type Identity struct {
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
}

type Document struct {
	ID                    string         `json:"id"`
	Type                  DocumentType   `json:"type"`
	Issuer                Identity       `json:"issuer"`
	Counterparty          *Identity      `json:"counterparty,omitempty"`
	Items                 []LineItem     `json:"items"`
	FeePolicy             FeePolicy      `json:"fee_policy"`
	Status                DocumentStatus `json:"status"`
	AllowMultiplePayments bool           `json:"allow_multiple_payments"`
	TargetQuantity        int64          `json:"target_quantity,omitempty"`
	PaidQuantity          int64          `json:"paid_quantity"`
	PaidAmount            int64          `json:"paid_amount"`
	Totals                Totals         `json:"totals"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func (d *Document) IsTerminal() bool {
	return d.Status == DocumentStatusPaid || d.Status == DocumentStatusExpired
}

// Clone returns a deep copy so stored documents never alias caller memory.
func (d *Document) Clone() *Document {
	cp := *d
	cp.Items = make([]LineItem, len(d.Items))
	copy(cp.Items, d.Items)
	if d.Counterparty != nil {
		counterparty := *d.Counterparty
		cp.Counterparty = &counterparty
	}
	return &cp
}

// PaymentProgress reports how far a document is from fully paid, as a
// percentage clamped to [0,100]. Multi-payment documents measure payer
// count against the target; single-payer documents measure amount.
type PaymentProgress struct {
	DocumentID   string         `json:"document_id"`
	Status       DocumentStatus `json:"status"`
	PaidAmount   int64          `json:"paid_amount"`
	PaidQuantity int64          `json:"paid_quantity"`
	TotalAmount  int64          `json:"total_amount"`
	Progress     float64        `json:"progress"`
}

type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeTransfer    TransactionType = "transfer"
	TransactionTypeBillPayment TransactionType = "bill_payment"
	TransactionTypeAirtime     TransactionType = "airtime"
	TransactionTypeReversal    TransactionType = "reversal"
	TransactionTypeChargeback  TransactionType = "chargeback"
	TransactionTypeRefund      TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionStatusSuccess    TransactionStatus = "success"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
)

// TransactionRecord is a read-only view of a processor transaction.
// Status transitions happen upstream; this service only ingests and reads.
type TransactionRecord struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Type      TransactionType   `json:"type"`
	Amount    int64             `json:"amount"`
	Fee       int64             `json:"fee"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Reference string            `json:"reference"`
}
