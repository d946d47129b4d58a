package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/kudipay/billing-be/internal/analytics"
	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/eventbus"
	"github.com/kudipay/billing-be/internal/storage"
	"github.com/kudipay/billing-be/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureBus records published events without running workers.
type captureBus struct {
	mu     sync.Mutex
	events []eventbus.Event
	err    error
}

func (b *captureBus) Publish(ctx context.Context, event eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, event)
	return nil
}

func (b *captureBus) Subscribe(eventType eventbus.EventType, consumer eventbus.Consumer) error {
	return nil
}

func (b *captureBus) Start(ctx context.Context) error    { return nil }
func (b *captureBus) Shutdown(ctx context.Context) error { return nil }

const sampleDump = `txn-1,u1,transfer,25000000,100,success,1756000000,ref-1
txn-2,u2,deposit,120000000,0,success,1756000100,ref-2
txn-3,u1,airtime,not-a-number,0,success,1756000200,ref-3
txn-4,u3,refund,5000,0,failed,1756000300,ref-4
`

func TestCSVDumpImporter_QueuesParsableRowsOnly(t *testing.T) {
	bus := &captureBus{}
	importer := NewCSVDumpImporter(bus, logger.NewNop())

	queued, err := importer.ImportStream(context.Background(), strings.NewReader(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, 3, queued)
	require.Len(t, bus.events, 3)

	first := bus.events[0]
	assert.Equal(t, eventbus.EventTypeTransactionIngested, first.Type)
	assert.Equal(t, "ingest-txn-1-1", first.ID)

	payload, ok := first.Payload.(eventbus.TransactionIngestedEvent)
	require.True(t, ok)
	assert.Equal(t, "txn-1", payload.Record.ID)
	assert.Equal(t, domain.TransactionTypeTransfer, payload.Record.Type)
	assert.Equal(t, int64(25000000), payload.Record.Amount)
	assert.Equal(t, domain.TransactionStatusSuccess, payload.Record.Status)
}

func TestCSVDumpImporter_NormalizesStatusAndType(t *testing.T) {
	bus := &captureBus{}
	importer := NewCSVDumpImporter(bus, logger.NewNop())

	dump := "txn-1,u1,TRANSFER,1000,0,SUCCESS,1756000000,ref-1\n"

	queued, err := importer.ImportStream(context.Background(), strings.NewReader(dump))
	require.NoError(t, err)
	require.Equal(t, 1, queued)

	payload := bus.events[0].Payload.(eventbus.TransactionIngestedEvent)
	assert.Equal(t, domain.TransactionTypeTransfer, payload.Record.Type)
	assert.Equal(t, domain.TransactionStatusSuccess, payload.Record.Status)
}

func TestCSVDumpImporter_AllRowsMalformed(t *testing.T) {
	bus := &captureBus{}
	importer := NewCSVDumpImporter(bus, logger.NewNop())

	dump := "txn-1,u1,transfer,abc,0,success,1756000000,ref-1\n" +
		"txn-2,u1,transfer,1000,0,not-a-status,1756000000,ref-2\n"

	_, err := importer.ImportStream(context.Background(), strings.NewReader(dump))
	assert.ErrorContains(t, err, "no parsable rows")
	assert.Empty(t, bus.events)
}

func TestCSVDumpImporter_EmptyDump(t *testing.T) {
	bus := &captureBus{}
	importer := NewCSVDumpImporter(bus, logger.NewNop())

	queued, err := importer.ImportStream(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, queued)
}

func TestTransactionService_ListAttachesAlerts(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddTransaction(ctx, domain.TransactionRecord{
		ID: "1", UserID: "u1", Type: domain.TransactionTypeTransfer,
		Amount: 25_000_000, Status: domain.TransactionStatusSuccess,
	}))
	require.NoError(t, store.AddTransaction(ctx, domain.TransactionRecord{
		ID: "2", UserID: "u1", Type: domain.TransactionTypeDeposit,
		Amount: 5000, Status: domain.TransactionStatusSuccess,
	}))

	svc := NewTransactionService(store, NewCSVDumpImporter(&captureBus{}, logger.NewNop()), logger.NewNop())

	rows, total, err := svc.List(ctx, domain.TransactionFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{analytics.AlertLargeTransfer}, rows[0].Alerts)
	assert.Empty(t, rows[1].Alerts)
}

func TestTransactionService_SummaryAggregatesAllMatchingRecords(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	for _, r := range []domain.TransactionRecord{
		{ID: "1", UserID: "u1", Type: domain.TransactionTypeTransfer, Amount: 1000, Status: domain.TransactionStatusSuccess},
		{ID: "2", UserID: "u1", Type: domain.TransactionTypeDeposit, Amount: 2000, Status: domain.TransactionStatusFailed},
		{ID: "3", UserID: "u2", Type: domain.TransactionTypeAirtime, Amount: 4000, Status: domain.TransactionStatusSuccess},
	} {
		require.NoError(t, store.AddTransaction(ctx, r))
	}

	svc := NewTransactionService(store, NewCSVDumpImporter(&captureBus{}, logger.NewNop()), logger.NewNop())

	stats, err := svc.Summary(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 66.66, stats.Success.Rate, 0.1)

	userStats, err := svc.Summary(ctx, domain.TransactionFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 2, userStats.Total)
	assert.Equal(t, 50.0, userStats.Success.Rate)
}
