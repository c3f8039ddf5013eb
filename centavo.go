// Package centavo is a client for the Centavo hosted payment gateway. It
// exposes one service per gateway resource (charges, cards, customers) on
// a Client constructed from an API key and merchant id.
//
// The client is stateless beyond its immutable credentials and safe for
// concurrent use. Every operation is one synchronous round trip; the SDK
// performs no retries, so retry policy stays with the caller, who alone
// can judge whether re-submitting a money-moving request is safe.
package centavo

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the production gateway endpoint.
const DefaultBaseURL = "https://api.centavo.mx"

const defaultTimeout = 30 * time.Second

// Client is the entry point to the gateway. Construct one per credential
// pair with NewClient and share it freely; do not build process-wide
// singletons around it.
type Client struct {
	Charges   *ChargeService
	Cards     *CardService
	Customers *CustomerService

	backend *backend
}

type options struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Option adjusts client construction.
type Option func(*options)

// WithBaseURL points the client at a non-production gateway, e.g. the
// sandbox environment or a test double.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout bounds each round trip. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithHTTPClient substitutes the underlying HTTP client. The supplied
// client must be safe for concurrent use.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) { o.httpClient = httpClient }
}

// WithLogger routes transport logs through the supplied logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewClient builds a gateway client. Both credentials are required: the
// API key authenticates every request and the merchant id scopes every
// request path.
func NewClient(apiKey, merchantID string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ValidationError{Field: "api_key", Message: "api key is required"}
	}
	if merchantID == "" {
		return nil, &ValidationError{Field: "merchant_id", Message: "merchant id is required"}
	}

	o := options{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := newBackend(apiKey, merchantID, o)

	return &Client{
		Charges:   &ChargeService{backend: b},
		Cards:     &CardService{backend: b},
		Customers: &CustomerService{backend: b},
		backend:   b,
	}, nil
}
