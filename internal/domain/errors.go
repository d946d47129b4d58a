package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrDocumentImmutable    = errors.New("document is no longer editable")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrDocumentNotPayable   = errors.New("document is not open for payment")
	ErrPaymentTargetReached = errors.New("payment target already reached")
	ErrDuplicateEvent       = errors.New("duplicate event")
	ErrInvalidPageParams    = errors.New("invalid page parameters")
)

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field, never just the first.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// PaymentError means the wallet declined or failed the debit. The flow
// returns to PIN entry; nothing was charged.
type PaymentError struct {
	Reason string
	Err    error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment failed: %s: %v", e.Reason, e.Err)
	}
	return "payment failed: " + e.Reason
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// PersistenceError means the document save failed after a successful
// debit. The charge has already been refunded by the time callers see it.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save document: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
