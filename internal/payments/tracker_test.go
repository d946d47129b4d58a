package payments

import (
	"testing"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiPaymentDoc(target int64) *domain.Document {
	return &domain.Document{
		ID:                    "doc-multi",
		Type:                  domain.DocumentTypeInvoice,
		Status:                domain.DocumentStatusUnpaid,
		AllowMultiplePayments: true,
		TargetQuantity:        target,
		Items: []domain.LineItem{
			{ID: "a", Description: "Ticket", Quantity: 1, UnitPrice: 50000},
		},
		Totals: domain.Totals{Subtotal: 50000, FeeAmount: 1750, Total: 51750},
	}
}

func singlePaymentDoc() *domain.Document {
	return &domain.Document{
		ID:     "doc-single",
		Type:   domain.DocumentTypeInvoice,
		Status: domain.DocumentStatusUnpaid,
		Items: []domain.LineItem{
			{ID: "a", Description: "Consulting", Quantity: 1, UnitPrice: 200000},
		},
		Totals: domain.Totals{Subtotal: 200000, FeeAmount: 7000, Total: 207000},
	}
}

func TestApply_MultiPayment_EachPayerPaysFullTotal(t *testing.T) {
	doc := multiPaymentDoc(3)

	updated, err := Apply(doc, 51750)
	require.NoError(t, err)

	assert.Equal(t, int64(1), updated.PaidQuantity)
	assert.Equal(t, int64(51750), updated.PaidAmount)
	assert.Equal(t, domain.DocumentStatusPartiallyPaid, updated.Status)

	// Source document untouched.
	assert.Equal(t, int64(0), doc.PaidQuantity)
	assert.Equal(t, domain.DocumentStatusUnpaid, doc.Status)
}

func TestApply_MultiPayment_ReachesTarget(t *testing.T) {
	doc := multiPaymentDoc(3)

	var err error
	for i := 0; i < 3; i++ {
		doc, err = Apply(doc, 51750)
		require.NoError(t, err)
	}

	assert.Equal(t, domain.DocumentStatusPaid, doc.Status)
	assert.Equal(t, int64(3), doc.PaidQuantity)
	assert.Equal(t, int64(3*51750), doc.PaidAmount)
	assert.Equal(t, float64(100), Progress(doc))
}

func TestApply_MultiPayment_RejectsBeyondTarget(t *testing.T) {
	doc := multiPaymentDoc(1)

	doc, err := Apply(doc, 51750)
	require.NoError(t, err)
	require.Equal(t, domain.DocumentStatusPaid, doc.Status)

	_, err = Apply(doc, 51750)
	assert.ErrorIs(t, err, domain.ErrDocumentNotPayable)
}

func TestApply_SinglePayment_PaidWhenAmountCoversTotal(t *testing.T) {
	doc := singlePaymentDoc()

	updated, err := Apply(doc, 207000)
	require.NoError(t, err)

	assert.Equal(t, domain.DocumentStatusPaid, updated.Status)
	assert.Equal(t, int64(207000), updated.PaidAmount)
	// Paid quantity is irrelevant for single-payer documents.
	assert.Equal(t, int64(0), updated.PaidQuantity)
}

func TestApply_SinglePayment_PartialAmountStaysUnpaid(t *testing.T) {
	doc := singlePaymentDoc()

	updated, err := Apply(doc, 100000)
	require.NoError(t, err)

	assert.Equal(t, domain.DocumentStatusUnpaid, updated.Status)
	assert.Equal(t, int64(100000), updated.PaidAmount)
}

func TestApply_RejectsDraftAndTerminal(t *testing.T) {
	draft := singlePaymentDoc()
	draft.Status = domain.DocumentStatusDraft
	_, err := Apply(draft, 1000)
	assert.ErrorIs(t, err, domain.ErrDocumentNotPayable)

	paid := singlePaymentDoc()
	paid.Status = domain.DocumentStatusPaid
	_, err = Apply(paid, 1000)
	assert.ErrorIs(t, err, domain.ErrDocumentNotPayable)

	expired := singlePaymentDoc()
	expired.Status = domain.DocumentStatusExpired
	_, err = Apply(expired, 1000)
	assert.ErrorIs(t, err, domain.ErrDocumentNotPayable)
}

func TestProgress_Clamped(t *testing.T) {
	doc := multiPaymentDoc(4)
	assert.Equal(t, float64(0), Progress(doc))

	doc.PaidQuantity = 1
	assert.Equal(t, float64(25), Progress(doc))

	doc.PaidQuantity = 8
	assert.Equal(t, float64(100), Progress(doc))

	single := singlePaymentDoc()
	single.PaidAmount = 414000
	assert.Equal(t, float64(100), Progress(single))
}

func TestProgress_ZeroTargetNoDivide(t *testing.T) {
	doc := multiPaymentDoc(0)
	assert.Equal(t, float64(0), Progress(doc))

	single := singlePaymentDoc()
	single.Totals.Total = 0
	assert.Equal(t, float64(0), Progress(single))
}

func TestProgressOf(t *testing.T) {
	doc := multiPaymentDoc(2)
	doc.PaidQuantity = 1
	doc.PaidAmount = 51750
	doc.Status = domain.DocumentStatusPartiallyPaid

	progress := ProgressOf(doc)

	assert.Equal(t, "doc-multi", progress.DocumentID)
	assert.Equal(t, domain.DocumentStatusPartiallyPaid, progress.Status)
	assert.Equal(t, int64(51750), progress.PaidAmount)
	assert.Equal(t, int64(1), progress.PaidQuantity)
	assert.Equal(t, int64(51750), progress.TotalAmount)
	assert.Equal(t, float64(50), progress.Progress)
}
