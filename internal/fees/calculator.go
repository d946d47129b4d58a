package fees

import (
	"github.com/kudipay/billing-be/internal/domain"
)

// Schedule is an injected fee policy: surcharge rate in basis points and an
// absolute cap in kobo.
type Schedule struct {
	RateBasisPoints int64
	Cap             int64
}

// Calculator computes document totals from line items. It is pure: no side
// effects, order-independent over items, and it never fails on malformed
// input (negative quantities and prices count as zero).
type Calculator struct {
	schedules map[domain.DocumentType]Schedule
}

func NewCalculator(invoice, receipt Schedule) *Calculator {
	return &Calculator{
		schedules: map[domain.DocumentType]Schedule{
			domain.DocumentTypeInvoice: invoice,
			domain.DocumentTypeReceipt: receipt,
		},
	}
}

func (c *Calculator) ScheduleFor(docType domain.DocumentType) Schedule {
	return c.schedules[docType]
}

// ComputeTotals derives subtotal, fee and payable total. The fee is always
// computed and reported; it is added to the payable total only when the
// customer pays it, otherwise the issuer absorbs it.
func (c *Calculator) ComputeTotals(docType domain.DocumentType, items []domain.LineItem, policy domain.FeePolicy) domain.Totals {
	schedule := c.schedules[docType]

	var subtotal int64
	for _, item := range items {
		subtotal += item.Total()
	}

	feeAmount := subtotal * schedule.RateBasisPoints / 10000
	if feeAmount > schedule.Cap {
		feeAmount = schedule.Cap
	}
	if feeAmount < 0 {
		feeAmount = 0
	}

	total := subtotal
	if policy == domain.FeePolicyPaidByCustomer {
		total += feeAmount
	}

	return domain.Totals{
		Subtotal:  subtotal,
		FeeAmount: feeAmount,
		Total:     total,
	}
}
