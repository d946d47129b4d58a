package flow

import (
	"context"
	"errors"
	"sync"
	"unicode"

	"github.com/kudipay/billing-be/internal/domain"
	"github.com/kudipay/billing-be/internal/fees"
	"github.com/kudipay/billing-be/internal/lifecycle"
	"github.com/kudipay/billing-be/internal/wallet"
	"github.com/kudipay/billing-be/pkg/logger"
)

// State of the PIN-gated issuance flow. The sequence is strict:
//
//	IDLE → VALIDATING → SUMMARY_SHOWN → AWAITING_PIN → DEDUCTING →
//	PERSISTING → SUCCESS, or REFUNDING → FAILED on a post-charge save
//	failure.
//
// Cancellation is allowed only before DEDUCTING begins; once the wallet has
// been touched the flow runs to a terminal state so a charge can never be
// left half-applied with no record.
type State string

const (
	StateIdle         State = "IDLE"
	StateValidating   State = "VALIDATING"
	StateSummaryShown State = "SUMMARY_SHOWN"
	StateAwaitingPIN  State = "AWAITING_PIN"
	StateDeducting    State = "DEDUCTING"
	StatePersisting   State = "PERSISTING"
	StateRefunding    State = "REFUNDING"
	StateSuccess      State = "SUCCESS"
	StateFailed       State = "FAILED"
)

var (
	ErrInvalidFlowState = errors.New("operation not allowed in current flow state")
	ErrCancelNotAllowed = errors.New("flow can no longer be cancelled")
	ErrInvalidPIN       = errors.New("PIN must be the configured number of digits")
)

// Summary is the pure projection shown to the user before they confirm.
type Summary struct {
	Document *domain.Document `json:"document"`
	Totals   domain.Totals    `json:"totals"`
	FlowFee  int64            `json:"flow_fee"`
}

type Config struct {
	PINLength   int
	IssuanceFee int64
}

// Flow drives one document issuance end to end. It is request-scoped:
// create one per generation attempt, never share across users.
type Flow struct {
	mu sync.Mutex

	state  State
	doc    *domain.Document
	totals domain.Totals

	calc   *fees.Calculator
	wallet wallet.Client
	repo   domain.DocumentRepository
	logger *logger.Logger
	cfg    Config
}

func New(calc *fees.Calculator, walletClient wallet.Client, repo domain.DocumentRepository, log *logger.Logger, cfg Config) *Flow {
	if cfg.PINLength <= 0 {
		cfg.PINLength = 4
	}
	return &Flow{
		state:  StateIdle,
		calc:   calc,
		wallet: walletClient,
		repo:   repo,
		logger: log,
		cfg:    cfg,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Start validates the draft and, when clean, computes its totals and moves
// to SUMMARY_SHOWN. Validation reports every violated field; on failure the
// flow returns to IDLE so the user can fix the form and retry.
func (f *Flow) Start(ctx context.Context, doc *domain.Document) (Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle {
		return Summary{}, ErrInvalidFlowState
	}

	f.state = StateValidating

	if err := lifecycle.ValidateForGeneration(doc); err != nil {
		f.state = StateIdle
		return Summary{}, err
	}

	f.doc = doc.Clone()
	f.totals = f.calc.ComputeTotals(doc.Type, doc.Items, doc.FeePolicy)
	f.state = StateSummaryShown

	return Summary{
		Document: f.doc.Clone(),
		Totals:   f.totals,
		FlowFee:  f.cfg.IssuanceFee,
	}, nil
}

// Confirm acknowledges the summary and opens PIN entry.
func (f *Flow) Confirm() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSummaryShown {
		return ErrInvalidFlowState
	}

	f.state = StateAwaitingPIN
	return nil
}

// Cancel abandons the flow with no side effects. It is refused once the
// deduction has begun.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSummaryShown, StateAwaitingPIN:
		f.state = StateIdle
		f.doc = nil
		return nil
	default:
		return ErrCancelNotAllowed
	}
}

// SubmitPIN runs the deduct→persist sequence. The flow mutex is held for
// the whole sequence, so Cancel and a double submission both block until a
// terminal or retryable state is reached.
//
// A declined deduction returns the flow to AWAITING_PIN with nothing
// charged. A persistence failure after a successful non-zero deduction
// refunds exactly once before the error is surfaced.
func (f *Flow) SubmitPIN(ctx context.Context, pin string) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingPIN {
		return nil, ErrInvalidFlowState
	}

	if !validPIN(pin, f.cfg.PINLength) {
		return nil, ErrInvalidPIN
	}

	ctx = logger.WithDocumentID(ctx, f.doc.ID)

	f.state = StateDeducting

	amount := f.cfg.IssuanceFee
	hasAllowance, err := f.wallet.HasFreeAllowance(ctx, f.doc.Issuer.UserID)
	if err != nil {
		// Allowance is an optimization; charge the standard fee if the
		// check itself is unavailable.
		f.logger.Warn(ctx, "Free allowance check failed, charging standard fee",
			"error", err,
		)
	} else if hasAllowance {
		amount = 0
	}

	if _, err := f.wallet.Debit(ctx, amount, pin); err != nil {
		f.logger.Warn(ctx, "Fee deduction failed, returning to PIN entry",
			"amount", amount,
			"error", err,
		)
		f.state = StateAwaitingPIN
		return nil, err
	}

	f.logger.Info(ctx, "Fee deducted",
		"amount", amount,
	)

	f.state = StatePersisting

	f.doc.Status = domain.DocumentStatusUnpaid
	f.doc.Totals = f.totals

	saved, err := f.repo.Save(ctx, f.doc)
	if err != nil {
		// Compensating refund: a failed send must never leave a debited,
		// undocumented charge.
		if amount > 0 {
			f.state = StateRefunding
			if refundErr := f.wallet.Refund(ctx, amount, "document persistence failed"); refundErr != nil {
				f.logger.Error(ctx, "Compensating refund failed",
					"amount", amount,
					"error", refundErr,
				)
			} else {
				f.logger.Info(ctx, "Fee refunded after failed persistence",
					"amount", amount,
				)
			}
		}
		f.state = StateFailed
		return nil, &domain.PersistenceError{Err: err}
	}

	f.state = StateSuccess

	f.logger.Info(ctx, "Document generated",
		"status", saved.Status,
		"total", saved.Totals.Total,
	)

	return saved, nil
}

func validPIN(pin string, length int) bool {
	if len(pin) != length {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
