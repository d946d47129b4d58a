package lifecycle

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/kudipay/billing-be/internal/domain"
)

// transitions is the document lifecycle. DRAFT→DRAFT covers draft re-saves
// (upsert by id). Everything past UNPAID is driven by external events
// (payment confirmations, expiry), never by the issuer.
var transitions = map[domain.DocumentStatus][]domain.DocumentStatus{
	domain.DocumentStatusDraft: {
		domain.DocumentStatusDraft,
		domain.DocumentStatusUnpaid,
	},
	domain.DocumentStatusUnpaid: {
		domain.DocumentStatusPartiallyPaid,
		domain.DocumentStatusPaid,
		domain.DocumentStatusExpired,
	},
	domain.DocumentStatusPartiallyPaid: {
		domain.DocumentStatusPartiallyPaid,
		domain.DocumentStatusPaid,
		domain.DocumentStatusExpired,
	},
	// PAID and EXPIRED are terminal.
}

func CanTransition(from, to domain.DocumentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateForGeneration checks everything the issuer must fix before a
// draft can be generated, and reports every violation at once.
func ValidateForGeneration(doc *domain.Document) error {
	validationErr := &domain.ValidationError{}

	if doc.Status != domain.DocumentStatusDraft {
		validationErr.Add("status", "only a draft can be generated")
	}

	if len(doc.Items) == 0 {
		validationErr.Add("items", "at least one line item is required")
	}

	for i, item := range doc.Items {
		if strings.TrimSpace(item.Description) == "" {
			validationErr.Add(fmt.Sprintf("items[%d].description", i), "description is required")
		}
		if item.Quantity <= 0 {
			validationErr.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be greater than zero")
		}
		if item.UnitPrice <= 0 {
			validationErr.Add(fmt.Sprintf("items[%d].unit_price", i), "unit price must be greater than zero")
		}
	}

	if doc.AllowMultiplePayments {
		if doc.TargetQuantity < 1 {
			validationErr.Add("target_quantity", "target quantity must be at least 1")
		}
	} else {
		if doc.Counterparty == nil || strings.TrimSpace(doc.Counterparty.Email) == "" {
			validationErr.Add("counterparty.email", "counterparty email is required")
		} else if _, err := mail.ParseAddress(doc.Counterparty.Email); err != nil {
			validationErr.Add("counterparty.email", "counterparty email is not a valid address")
		}
	}

	if validationErr.HasViolations() {
		return validationErr
	}
	return nil
}
