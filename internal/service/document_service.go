package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/fees"
	"github.com/kudipay/billing-be/internal/flow"
	"github.com/kudipay/billing-be/internal/payments"
	"github.com/kudipay/billing-be/internal/wallet"
	"github.com/kudipay/billing-be/pkg/logger"
)

type DocumentService interface {
	// SaveDraft upserts a draft by id, assigning one on first save.
	// Returns the stored draft with its current computed totals.
	SaveDraft(ctx context.Context, doc *domain.Document) (*domain.Document, domain.Totals, error)

	// Generate drives the PIN-gated flow for a stored draft:
	// validate → summary → PIN → fee deduction → persist as UNPAID,
	// with a compensating refund if the save fails after the charge.
	Generate(ctx context.Context, documentID, pin string) (*domain.Document, error)

	Get(ctx context.Context, documentID string) (*domain.Document, error)
	PaymentProgress(ctx context.Context, documentID string) (domain.PaymentProgress, error)

	// Expire marks a document expired. The trigger is external
	// (time-based), never a user action.
	Expire(ctx context.Context, documentID string) error
}

type documentService struct {
	repo    domain.DocumentRepository
	calc    *fees.Calculator
	wallet  wallet.Client
	logger  *logger.Logger
	flowCfg flow.Config
}

func NewDocumentService(repo domain.DocumentRepository, calc *fees.Calculator, walletClient wallet.Client, log *logger.Logger, flowCfg flow.Config) DocumentService {
	return &documentService{
		repo:    repo,
		calc:    calc,
		wallet:  walletClient,
		logger:  log,
		flowCfg: flowCfg,
	}
}

func (s *documentService) SaveDraft(ctx context.Context, doc *domain.Document) (*domain.Document, domain.Totals, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	ctx = logger.WithDocumentID(ctx, doc.ID)

	// Drafts always enter storage as drafts with zeroed payment state,
	// whatever the client sent.
	doc.Status = domain.DocumentStatusDraft
	doc.PaidQuantity = 0
	doc.PaidAmount = 0
	doc.Totals = domain.Totals{}

	saved, err := s.repo.Save(ctx, doc)
	if err != nil {
		s.logger.Error(ctx, "Failed to save draft",
			"error", err,
		)
		return nil, domain.Totals{}, err
	}

	totals := s.calc.ComputeTotals(saved.Type, saved.Items, saved.FeePolicy)

	s.logger.Info(ctx, "Draft saved",
		"type", saved.Type,
		"items", len(saved.Items),
		"subtotal", totals.Subtotal,
	)

	return saved, totals, nil
}

func (s *documentService) Generate(ctx context.Context, documentID, pin string) (*domain.Document, error) {
	ctx = logger.WithDocumentID(ctx, documentID)

	doc, err := s.repo.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if doc.Status != domain.DocumentStatusDraft {
		return nil, domain.ErrDocumentImmutable
	}

	// One flow per generation attempt: request-scoped, never shared.
	f := flow.New(s.calc, s.wallet, s.repo, s.logger, s.flowCfg)

	summary, err := f.Start(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "Generation summary confirmed",
		"subtotal", summary.Totals.Subtotal,
		"fee_amount", summary.Totals.FeeAmount,
		"total", summary.Totals.Total,
	)

	if err := f.Confirm(); err != nil {
		return nil, err
	}

	generated, err := f.SubmitPIN(ctx, pin)
	if err != nil {
		return nil, err
	}

	return generated, nil
}

func (s *documentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	ctx = logger.WithDocumentID(ctx, documentID)

	doc, err := s.repo.Get(ctx, documentID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get document",
			"error", err,
		)
		return nil, err
	}

	return doc, nil
}

func (s *documentService) PaymentProgress(ctx context.Context, documentID string) (domain.PaymentProgress, error) {
	ctx = logger.WithDocumentID(ctx, documentID)

	doc, err := s.repo.Get(ctx, documentID)
	if err != nil {
		return domain.PaymentProgress{}, err
	}

	return payments.ProgressOf(doc), nil
}

func (s *documentService) Expire(ctx context.Context, documentID string) error {
	ctx = logger.WithDocumentID(ctx, documentID)

	err := s.repo.UpdateStatus(ctx, documentID, domain.DocumentStatusExpired)
	if err != nil {
		s.logger.Error(ctx, "Failed to expire document",
			"error", err,
		)
		return err
	}

	s.logger.Info(ctx, "Document expired")

	return nil
}
