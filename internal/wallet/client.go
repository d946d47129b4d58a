package wallet

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kudipay/billing-be/internal/domain"
)

type DebitResult struct {
	OK                 bool  `json:"ok"`
	WalletBalanceAfter int64 `json:"wallet_balance_after"`
}

// Client is the wallet collaborator. This service never implements ledger
// mechanics; it only debits the issuance fee, refunds it on a failed save,
// and asks whether the issuer still has free-tier allowance.
//
// None of these calls are retried automatically: a declined or failed debit
// is reported back to the user, not replayed.
type Client interface {
	Debit(ctx context.Context, amount int64, credential string) (DebitResult, error)
	Refund(ctx context.Context, amount int64, reason string) error
	HasFreeAllowance(ctx context.Context, userID string) (bool, error)
}

type httpClient struct {
	rc *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpClient{rc: rc}
}

type debitRequest struct {
	Amount     int64  `json:"amount"`
	Credential string `json:"credential"`
}

func (c *httpClient) Debit(ctx context.Context, amount int64, credential string) (DebitResult, error) {
	var result DebitResult

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(debitRequest{Amount: amount, Credential: credential}).
		SetResult(&result).
		Post("/wallet/debit")
	if err != nil {
		return DebitResult{}, &domain.PaymentError{Reason: "wallet debit request failed", Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return DebitResult{}, &domain.PaymentError{
			Reason: fmt.Sprintf("wallet debit returned status %d", resp.StatusCode()),
		}
	}

	if !result.OK {
		return result, &domain.PaymentError{Reason: "wallet debit declined"}
	}

	return result, nil
}

type refundRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

func (c *httpClient) Refund(ctx context.Context, amount int64, reason string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(refundRequest{Amount: amount, Reason: reason}).
		Post("/wallet/refund")
	if err != nil {
		return fmt.Errorf("wallet refund request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("wallet refund returned status %d", resp.StatusCode())
	}

	return nil
}

type allowanceResponse struct {
	HasFreeAllowance bool `json:"has_free_allowance"`
}

func (c *httpClient) HasFreeAllowance(ctx context.Context, userID string) (bool, error) {
	var result allowanceResponse

	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("user_id", userID).
		SetResult(&result).
		Get("/wallet/allowance")
	if err != nil {
		return false, fmt.Errorf("wallet allowance request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return false, fmt.Errorf("wallet allowance returned status %d", resp.StatusCode())
	}

	return result.HasFreeAllowance, nil
}
