package payments

import (
	"github.com/kudipay/billing-be/internal/domain"
)

// Apply is the pure increment rule for a confirmed payment. The store calls
// it while holding its write lock, which is what makes concurrent webhook
// arrivals safe; nothing outside the store should read-modify-write a
// document's paid counters.
//
// Multi-payment documents model "N people each pay the full total": every
// confirmation adds one payer and one full total, never a fraction.
func Apply(doc *domain.Document, amount int64) (*domain.Document, error) {
	if doc.Status == domain.DocumentStatusDraft || doc.IsTerminal() {
		return nil, domain.ErrDocumentNotPayable
	}

	updated := doc.Clone()

	if updated.AllowMultiplePayments {
		if updated.PaidQuantity >= updated.TargetQuantity {
			return nil, domain.ErrPaymentTargetReached
		}
		updated.PaidQuantity++
		updated.PaidAmount += updated.Totals.Total
		if updated.PaidQuantity >= updated.TargetQuantity {
			updated.Status = domain.DocumentStatusPaid
		} else {
			updated.Status = domain.DocumentStatusPartiallyPaid
		}
		return updated, nil
	}

	updated.PaidAmount += amount
	if updated.PaidAmount >= updated.Totals.Total {
		updated.Status = domain.DocumentStatusPaid
	}
	return updated, nil
}

// Progress reports payment completion as a percentage clamped to [0,100].
func Progress(doc *domain.Document) float64 {
	var progress float64

	if doc.AllowMultiplePayments {
		if doc.TargetQuantity > 0 {
			progress = float64(doc.PaidQuantity) / float64(doc.TargetQuantity) * 100
		}
	} else {
		if doc.Totals.Total > 0 {
			progress = float64(doc.PaidAmount) / float64(doc.Totals.Total) * 100
		} else if doc.Status == domain.DocumentStatusPaid {
			progress = 100
		}
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return progress
}

func ProgressOf(doc *domain.Document) domain.PaymentProgress {
	return domain.PaymentProgress{
		DocumentID:   doc.ID,
		Status:       doc.Status,
		PaidAmount:   doc.PaidAmount,
		PaidQuantity: doc.PaidQuantity,
		TotalAmount:  doc.Totals.Total,
		Progress:     Progress(doc),
	}
}
