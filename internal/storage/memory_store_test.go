package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftDoc(id string) *domain.Document {
	return &domain.Document{
		ID:     id,
		Type:   domain.DocumentTypeInvoice,
		Status: domain.DocumentStatusDraft,
		Issuer: domain.Identity{UserID: "user-1", Name: "Ada", Email: "ada@issuer.ng"},
		Counterparty: &domain.Identity{
			Name:  "Bola",
			Email: "bola@example.com",
		},
		Items: []domain.LineItem{
			{ID: "a", Description: "Consulting", Quantity: 1, UnitPrice: 100000},
		},
		FeePolicy: domain.FeePolicyPaidByCustomer,
	}
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	saved, err := store.Save(ctx, draftDoc("doc-1"))
	require.NoError(t, err)
	assert.False(t, saved.CreatedAt.IsZero())

	doc, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, domain.DocumentStatusDraft, doc.Status)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestMemoryStore_SaveUpsertsDraftById(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Save(ctx, draftDoc("doc-1"))
	require.NoError(t, err)

	edited := draftDoc("doc-1")
	edited.Items = append(edited.Items, domain.LineItem{
		ID: "b", Description: "Hosting", Quantity: 2, UnitPrice: 25000,
	})

	second, err := store.Save(ctx, edited)
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	doc, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, doc.Items, 2)
}

func TestMemoryStore_SaveRejectsNonDraftMutation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	finalized := draftDoc("doc-1")
	finalized.Status = domain.DocumentStatusUnpaid
	finalized.Totals = domain.Totals{Subtotal: 100000, FeeAmount: 3500, Total: 103500}

	_, err := store.Save(ctx, finalized)
	require.NoError(t, err)

	// A stale client trying to save item edits against the generated
	// document must be refused by the store itself.
	stale := draftDoc("doc-1")
	stale.Items[0].UnitPrice = 1

	_, err = store.Save(ctx, stale)
	assert.ErrorIs(t, err, domain.ErrDocumentImmutable)

	doc, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), doc.Items[0].UnitPrice)
}

func TestMemoryStore_SaveRejectsInvalidInitialStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := draftDoc("doc-1")
	doc.Status = domain.DocumentStatusPaid

	_, err := store.Save(ctx, doc)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := draftDoc("doc-1")
	doc.Status = domain.DocumentStatusUnpaid
	_, err := store.Save(ctx, doc)
	require.NoError(t, err)

	err = store.UpdateStatus(ctx, "doc-1", domain.DocumentStatusExpired)
	require.NoError(t, err)

	stored, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentStatusExpired, stored.Status)

	// Terminal: nothing leaves EXPIRED.
	err = store.UpdateStatus(ctx, "doc-1", domain.DocumentStatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMemoryStore_ApplyPayment_SinglePayer(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := draftDoc("doc-1")
	doc.Status = domain.DocumentStatusUnpaid
	doc.Totals = domain.Totals{Subtotal: 100000, FeeAmount: 3500, Total: 103500}
	_, err := store.Save(ctx, doc)
	require.NoError(t, err)

	updated, err := store.ApplyPayment(ctx, "doc-1", 103500)
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentStatusPaid, updated.Status)
	assert.Equal(t, int64(103500), updated.PaidAmount)
}

func TestMemoryStore_ApplyPayment_ConcurrentPayersLoseNoUpdates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const target = 50

	doc := draftDoc("doc-1")
	doc.Status = domain.DocumentStatusUnpaid
	doc.AllowMultiplePayments = true
	doc.TargetQuantity = target
	doc.Counterparty = nil
	doc.Totals = domain.Totals{Subtotal: 100000, FeeAmount: 3500, Total: 103500}
	_, err := store.Save(ctx, doc)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < target; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.ApplyPayment(ctx, "doc-1", 103500)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(target), stored.PaidQuantity)
	assert.Equal(t, int64(target)*103500, stored.PaidAmount)
	assert.Equal(t, domain.DocumentStatusPaid, stored.Status)
}

func TestMemoryStore_ApplyPayment_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.ApplyPayment(ctx, "nonexistent", 1000)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Save(ctx, draftDoc("doc-1"))
	require.NoError(t, err)

	doc, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	doc.Items[0].UnitPrice = 1

	fresh, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), fresh.Items[0].UnitPrice)
}

func TestMemoryStore_ListTransactions_FilterAndPaginate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	records := []domain.TransactionRecord{
		{ID: "1", UserID: "u1", Type: domain.TransactionTypeTransfer, Amount: 100, Status: domain.TransactionStatusSuccess},
		{ID: "2", UserID: "u2", Type: domain.TransactionTypeDeposit, Amount: 200, Status: domain.TransactionStatusFailed},
		{ID: "3", UserID: "u1", Type: domain.TransactionTypeTransfer, Amount: 300, Status: domain.TransactionStatusSuccess},
		{ID: "4", UserID: "u1", Type: domain.TransactionTypeAirtime, Amount: 400, Status: domain.TransactionStatusPending},
	}
	for _, r := range records {
		require.NoError(t, store.AddTransaction(ctx, r))
	}

	all, total, err := store.ListTransactions(ctx, domain.TransactionFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)
	// First-encountered order is preserved.
	assert.Equal(t, "1", all[0].ID)

	status := domain.TransactionStatusSuccess
	successes, total, err := store.ListTransactions(ctx, domain.TransactionFilter{Status: &status}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, successes, 2)

	txType := domain.TransactionTypeTransfer
	transfers, total, err := store.ListTransactions(ctx, domain.TransactionFilter{Type: &txType, UserID: "u1"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, transfers, 2)

	page2, total, err := store.ListTransactions(ctx, domain.TransactionFilter{}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, page2, 1)
	assert.Equal(t, "4", page2[0].ID)

	empty, total, err := store.ListTransactions(ctx, domain.TransactionFilter{}, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, empty)
}

func TestMemoryStore_EventLedger(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	processed, err := store.IsEventProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkEventProcessed(ctx, "evt-1"))

	processed, err = store.IsEventProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, processed)
}
