package storage

import (
	"context"
	"sync"
	"time"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/lifecycle"
	"github.com/kudipay/billing-be/internal/payments"
)

type MemoryStore struct {
	documents       map[string]*domain.Document
	transactions    []domain.TransactionRecord
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		documents:       make(map[string]*domain.Document),
		processedEvents: make(map[string]bool),
	}
}

// Save upserts a document by id. A document that has left DRAFT is
// immutable here regardless of what the client sends: a stale client
// cannot save field changes against a generated document.
func (s *MemoryStore) Save(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := doc.Clone()

	existing, exists := s.documents[doc.ID]
	if exists {
		if existing.Status != domain.DocumentStatusDraft {
			return nil, domain.ErrDocumentImmutable
		}
		if !lifecycle.CanTransition(existing.Status, doc.Status) {
			return nil, domain.ErrInvalidTransition
		}
		stored.CreatedAt = existing.CreatedAt
	} else {
		if doc.Status != domain.DocumentStatusDraft && doc.Status != domain.DocumentStatusUnpaid {
			return nil, domain.ErrInvalidTransition
		}
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	s.documents[doc.ID] = stored

	return stored.Clone(), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.documents[id]
	if !exists {
		return nil, domain.ErrDocumentNotFound
	}

	return doc.Clone(), nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.documents[id]
	if !exists {
		return domain.ErrDocumentNotFound
	}

	if !lifecycle.CanTransition(doc.Status, status) {
		return domain.ErrInvalidTransition
	}

	doc.Status = status
	doc.UpdatedAt = time.Now()

	return nil
}

// ApplyPayment runs the increment rule while holding the write lock, so
// near-simultaneous payer confirmations serialize here and no update is
// lost. Callers must not read the document and write counters back.
func (s *MemoryStore) ApplyPayment(ctx context.Context, id string, amount int64) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.documents[id]
	if !exists {
		return nil, domain.ErrDocumentNotFound
	}

	updated, err := payments.Apply(doc, amount)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()

	s.documents[id] = updated

	return updated.Clone(), nil
}

func (s *MemoryStore) AddTransaction(ctx context.Context, record domain.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, record)

	return nil
}

func (s *MemoryStore) ListTransactions(ctx context.Context, filter domain.TransactionFilter, page, perPage int) ([]domain.TransactionRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.TransactionRecord
	for _, record := range s.transactions {
		if filter.Status != nil && record.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && record.Type != *filter.Type {
			continue
		}
		if filter.UserID != "" && record.UserID != filter.UserID {
			continue
		}
		filtered = append(filtered, record)
	}

	total := len(filtered)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= total {
		return []domain.TransactionRecord{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}
