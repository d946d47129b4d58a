package fees

import (
	"testing"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestCalculator() *Calculator {
	return NewCalculator(
		Schedule{RateBasisPoints: 350, Cap: 200000},
		Schedule{RateBasisPoints: 200, Cap: 200000},
	)
}

func TestComputeTotals_PaidByCustomer(t *testing.T) {
	calc := newTestCalculator()

	// NGN 2,000 subtotal at 3.5% -> NGN 70 fee, NGN 2,070 payable.
	items := []domain.LineItem{
		{ID: "a", Description: "Tickets", Quantity: 2, UnitPrice: 50000},
		{ID: "b", Description: "Service", Quantity: 1, UnitPrice: 100000},
	}

	totals := calc.ComputeTotals(domain.DocumentTypeInvoice, items, domain.FeePolicyPaidByCustomer)

	assert.Equal(t, int64(200000), totals.Subtotal)
	assert.Equal(t, int64(7000), totals.FeeAmount)
	assert.Equal(t, int64(207000), totals.Total)
}

func TestComputeTotals_AbsorbedByIssuer(t *testing.T) {
	calc := newTestCalculator()

	items := []domain.LineItem{
		{ID: "a", Description: "Tickets", Quantity: 2, UnitPrice: 50000},
	}

	totals := calc.ComputeTotals(domain.DocumentTypeInvoice, items, domain.FeePolicyAbsorbedByIssuer)

	// Fee is still computed and reported, but excluded from the payable total.
	assert.Equal(t, int64(100000), totals.Subtotal)
	assert.Equal(t, int64(3500), totals.FeeAmount)
	assert.Equal(t, int64(100000), totals.Total)
}

func TestComputeTotals_FeeCapped(t *testing.T) {
	calc := newTestCalculator()

	items := []domain.LineItem{
		{ID: "a", Description: "Contract", Quantity: 1, UnitPrice: 100000000},
	}

	totals := calc.ComputeTotals(domain.DocumentTypeInvoice, items, domain.FeePolicyPaidByCustomer)

	assert.Equal(t, int64(200000), totals.FeeAmount)
	assert.Equal(t, int64(100200000), totals.Total)
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	calc := newTestCalculator()

	items := []domain.LineItem{
		{ID: "a", Description: "One", Quantity: 3, UnitPrice: 12300},
		{ID: "b", Description: "Two", Quantity: 7, UnitPrice: 999},
		{ID: "c", Description: "Three", Quantity: 1, UnitPrice: 450000},
	}
	reversed := []domain.LineItem{items[2], items[1], items[0]}

	forward := calc.ComputeTotals(domain.DocumentTypeReceipt, items, domain.FeePolicyPaidByCustomer)
	backward := calc.ComputeTotals(domain.DocumentTypeReceipt, reversed, domain.FeePolicyPaidByCustomer)

	assert.Equal(t, forward, backward)
}

func TestComputeTotals_MalformedItemsCountAsZero(t *testing.T) {
	calc := newTestCalculator()

	items := []domain.LineItem{
		{ID: "a", Description: "Valid", Quantity: 2, UnitPrice: 50000},
		{ID: "b", Description: "Negative quantity", Quantity: -5, UnitPrice: 50000},
		{ID: "c", Description: "Negative price", Quantity: 3, UnitPrice: -100},
		{ID: "d"},
	}

	totals := calc.ComputeTotals(domain.DocumentTypeInvoice, items, domain.FeePolicyPaidByCustomer)

	assert.Equal(t, int64(100000), totals.Subtotal)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	calc := newTestCalculator()

	totals := calc.ComputeTotals(domain.DocumentTypeInvoice, nil, domain.FeePolicyPaidByCustomer)

	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.FeeAmount)
	assert.Equal(t, int64(0), totals.Total)
}

func TestComputeTotals_ReceiptUsesOwnSchedule(t *testing.T) {
	calc := newTestCalculator()

	items := []domain.LineItem{
		{ID: "a", Description: "Goods", Quantity: 1, UnitPrice: 200000},
	}

	invoice := calc.ComputeTotals(domain.DocumentTypeInvoice, items, domain.FeePolicyPaidByCustomer)
	receipt := calc.ComputeTotals(domain.DocumentTypeReceipt, items, domain.FeePolicyPaidByCustomer)

	assert.Equal(t, int64(7000), invoice.FeeAmount)
	assert.Equal(t, int64(4000), receipt.FeeAmount)
}

func TestComputeTotals_FeeNeverNegativeNorAboveCap(t *testing.T) {
	calc := newTestCalculator()

	subtotals := []int64{0, 1, 999, 57143, 57144, 5000000, 100000000}
	for _, subtotal := range subtotals {
		items := []domain.LineItem{{ID: "a", Description: "x", Quantity: 1, UnitPrice: subtotal}}
		totals := calc.ComputeTotals(domain.DocumentTypeInvoice, items, domain.FeePolicyPaidByCustomer)

		assert.GreaterOrEqual(t, totals.FeeAmount, int64(0), "subtotal %d", subtotal)
		assert.LessOrEqual(t, totals.FeeAmount, int64(200000), "subtotal %d", subtotal)
	}
}
