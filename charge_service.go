package centavo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// ChargeService creates, queries, refunds and confirms charges.
type ChargeService struct {
	backend *backend
}

// Create submits a new charge. Local preconditions (positive amount,
// method present) are checked before the round trip; everything else is
// the gateway's call. On success the returned Charge carries the status
// the gateway assigned. For 3-D Secure and other redirect flows that is
// charge_pending with PaymentMethod.URL set, and the caller must send the
// end user there.
//
// A timed-out Create has an unknown outcome. Re-query with Get or List
// before retrying; creation is not idempotent at this layer.
func (s *ChargeService) Create(ctx context.Context, req *ChargeRequest) (*Charge, error) {
	if req == nil {
		return nil, &ValidationError{Message: "charge request is required"}
	}
	if req.Method == "" {
		return nil, &ValidationError{Field: "method", Message: "payment method is required"}
	}
	if !req.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}

	charge, err := do[Charge](ctx, s.backend, http.MethodPost, "charges", nil, req)
	if err != nil {
		return nil, err
	}
	if err := charge.checkDecoded(); err != nil {
		return nil, err
	}
	return charge, nil
}

// Get fetches a charge by id. This is the read side of the redirect flow:
// completion of a pending charge is observed only by re-fetching it.
func (s *ChargeService) Get(ctx context.Context, chargeID string) (*Charge, error) {
	if chargeID == "" {
		return nil, &ValidationError{Field: "charge_id", Message: "charge id is required"}
	}

	charge, err := do[Charge](ctx, s.backend, http.MethodGet, "charges/"+url.PathEscape(chargeID), nil, nil)
	if err != nil {
		return nil, err
	}
	if err := charge.checkDecoded(); err != nil {
		return nil, err
	}
	return charge, nil
}

// List returns the charges matching params, in the gateway's order.
func (s *ChargeService) List(ctx context.Context, params *SearchParams) ([]Charge, error) {
	return doList[Charge](ctx, s.backend, "charges", params.query())
}

type refundRequest struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// Refund reverses a completed charge. The result is a new Charge record
// representing the refund transaction, not a mutation of the original.
// Only the amount is validated locally; the gateway remains the final
// arbiter of whether the referenced charge is refundable.
func (s *ChargeService) Refund(ctx context.Context, chargeID, description string, amount decimal.Decimal) (*Charge, error) {
	if chargeID == "" {
		return nil, &ValidationError{Field: "charge_id", Message: "charge id is required"}
	}
	if !amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}

	refund, err := do[Charge](ctx, s.backend, http.MethodPost, "charges/"+url.PathEscape(chargeID)+"/refund", nil, &refundRequest{
		Description: description,
		Amount:      amount,
	})
	if err != nil {
		return nil, err
	}
	if err := refund.checkDecoded(); err != nil {
		return nil, err
	}
	return refund, nil
}

// RefundCharge is Refund with a last-known-status check: a charge that is
// not completed cannot be refunded, so the call is rejected before a
// wasted round trip. Callers holding only an id can still use Refund and
// let the gateway decide.
func (s *ChargeService) RefundCharge(ctx context.Context, charge *Charge, description string, amount decimal.Decimal) (*Charge, error) {
	if charge == nil {
		return nil, &ValidationError{Message: "charge is required"}
	}
	if !charge.CanRefund() {
		return nil, &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("charge %s cannot be refunded from status %q", charge.ID, charge.Status),
		}
	}
	return s.Refund(ctx, charge.ID, description, amount)
}

// Confirm advances a redirect-flow charge the merchant created
// unconfirmed. As everywhere, the response is the only source of truth
// for the resulting status.
func (s *ChargeService) Confirm(ctx context.Context, chargeID string) (*Charge, error) {
	if chargeID == "" {
		return nil, &ValidationError{Field: "charge_id", Message: "charge id is required"}
	}

	charge, err := do[Charge](ctx, s.backend, http.MethodPost, "charges/"+url.PathEscape(chargeID)+"/confirm", nil, nil)
	if err != nil {
		return nil, err
	}
	if err := charge.checkDecoded(); err != nil {
		return nil, err
	}
	return charge, nil
}

// ConfirmCharge is Confirm with a last-known-status check.
func (s *ChargeService) ConfirmCharge(ctx context.Context, charge *Charge) (*Charge, error) {
	if charge == nil {
		return nil, &ValidationError{Message: "charge is required"}
	}
	if !charge.CanConfirm() {
		return nil, &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("charge %s cannot be confirmed from status %q", charge.ID, charge.Status),
		}
	}
	return s.Confirm(ctx, charge.ID)
}
