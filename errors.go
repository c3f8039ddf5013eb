package centavo

import (
	"errors"
	"fmt"
)

// ValidationError reports a request that failed a local precondition before
// any network call was made. The caller can recover by correcting the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// TransportError reports a round trip that produced no gateway response:
// connection failures, cancelled contexts, exceeded deadlines. The outcome
// of the operation is unknown; callers must re-query rather than retry
// blindly, since charge creation is not idempotent.
type TransportError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: request timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GatewayError carries a non-2xx gateway response verbatim. The gateway's
// error taxonomy is authoritative; Code and Category are surfaced opaquely.
type GatewayError struct {
	Category    string `json:"category"`
	Code        int    `json:"error_code"`
	Description string `json:"description"`
	HTTPStatus  int    `json:"http_code"`
	RequestID   string `json:"request_id"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error [%s/%d]: %s (status: %d)", e.Category, e.Code, e.Description, e.HTTPStatus)
}

// Retryable reports whether the failure looks transient on the gateway
// side. The SDK itself never retries; this is a hint for callers.
func (e *GatewayError) Retryable() bool {
	return e.HTTPStatus >= 500
}

// DecodingError reports a 2xx response body that could not be mapped to the
// typed entity. It indicates a protocol mismatch and is never retryable.
type DecodingError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DecodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decoding %s: missing required field %q", e.Entity, e.Field)
	}
	return fmt.Sprintf("decoding %s: %v", e.Entity, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}

func IsTransportError(err error) (*TransportError, bool) {
	var terr *TransportError
	ok := errors.As(err, &terr)
	return terr, ok
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gerr *GatewayError
	ok := errors.As(err, &gerr)
	return gerr, ok
}

func IsDecodingError(err error) (*DecodingError, bool) {
	var derr *DecodingError
	ok := errors.As(err, &derr)
	return derr, ok
}
