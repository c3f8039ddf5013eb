package centavo

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus is the lifecycle state of a charge as reported by the
// gateway. It is deliberately an open string type: the gateway may add
// statuses, and decoding must never fail on a value this SDK predates.
type ChargeStatus string

const (
	StatusInProgress    ChargeStatus = "in_progress"
	StatusCompleted     ChargeStatus = "completed"
	StatusChargePending ChargeStatus = "charge_pending"
	StatusFailed        ChargeStatus = "failed"
	StatusRefunded      ChargeStatus = "refunded"
	StatusCancelled     ChargeStatus = "cancelled"
)

// Known reports whether the status is one this SDK recognizes. Unknown
// statuses still round-trip as their raw string.
func (s ChargeStatus) Known() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusChargePending,
		StatusFailed, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the gateway could legally move a charge
// from s to target. The gateway asserts transitions; the client only uses
// this table to reject follow-up calls that cannot possibly succeed.
func (s ChargeStatus) CanTransitionTo(target ChargeStatus) bool {
	switch s {
	case StatusInProgress:
		return allow(target, StatusCompleted, StatusChargePending, StatusFailed, StatusCancelled)
	case StatusChargePending:
		return allow(target, StatusCompleted, StatusFailed, StatusCancelled)
	case StatusCompleted:
		return allow(target, StatusRefunded)
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s ChargeStatus) Terminal() bool {
	switch s {
	case StatusFailed, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

func allow(target ChargeStatus, allowed ...ChargeStatus) bool {
	return slices.Contains(allowed, target)
}

// UseCardPointsType selects how loyalty points pay for a charge.
type UseCardPointsType string

const (
	UseCardPointsNone  UseCardPointsType = "NONE"
	UseCardPointsMixed UseCardPointsType = "MIXED"
	UseCardPointsOnly  UseCardPointsType = "ONLY_POINTS"
)

// Affiliation routes a charge through an alternate merchant affiliation.
// It is only meaningful attached to a ChargeRequest.
type Affiliation struct {
	Name string `json:"name"`
}

// PaymentMethod describes how a charge is being settled. For redirect
// flows (3-D Secure, bank transfer) URL carries the page the end user must
// visit before the charge can advance out of charge_pending.
type PaymentMethod struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ChargeRequest describes a charge to be created. Amount must be positive;
// everything else is validated by the gateway, which is the source of
// truth for method-specific requirements (e.g. device_session_id for
// card-not-present charges without a stored source).
type ChargeRequest struct {
	Method          string            `json:"method"`
	SourceID        string            `json:"source_id,omitempty"`
	Customer        *Customer         `json:"customer,omitempty"`
	Description     string            `json:"description,omitempty"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency,omitempty"`
	OrderID         string            `json:"order_id,omitempty"`
	Use3DSecure     bool              `json:"use_3d_secure,omitempty"`
	RedirectURL     string            `json:"redirect_url,omitempty"`
	DeviceSessionID string            `json:"device_session_id,omitempty"`
	Confirm         *bool             `json:"confirm,omitempty"`
	SendEmail       *bool             `json:"send_email,omitempty"`
	UseCardPoints   UseCardPointsType `json:"use_card_points,omitempty"`
	Affiliation     *Affiliation      `json:"affiliation,omitempty"`
}

// Charge is a single payment transaction. Charges are created and mutated
// only by the gateway; this SDK never changes a charge's fields locally,
// and every operation re-reads status from the response.
type Charge struct {
	ID            string          `json:"id"`
	Status        ChargeStatus    `json:"status"`
	CreationDate  time.Time       `json:"creation_date"`
	OperationDate time.Time       `json:"operation_date,omitzero"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod *PaymentMethod  `json:"payment_method,omitempty"`
	Customer      *Customer       `json:"customer,omitempty"`
	OrderID       string          `json:"order_id,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
}

// CanRefund reports whether a refund attempt can possibly succeed given
// the charge's last-known status.
func (c *Charge) CanRefund() bool {
	return c.Status.CanTransitionTo(StatusRefunded)
}

// CanConfirm reports whether the charge is awaiting a confirm step.
func (c *Charge) CanConfirm() bool {
	return c.Status == StatusChargePending
}

// checkDecoded enforces the fields without which a Charge is unusable.
func (c *Charge) checkDecoded() error {
	switch {
	case c.ID == "":
		return &DecodingError{Entity: "Charge", Field: "id"}
	case c.Status == "":
		return &DecodingError{Entity: "Charge", Field: "status"}
	case c.CreationDate.IsZero():
		return &DecodingError{Entity: "Charge", Field: "creation_date"}
	}
	return nil
}
