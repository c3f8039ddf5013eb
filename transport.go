package centavo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
)

// backend issues authenticated round trips against the gateway. It holds no
// mutable state and is safe for concurrent use; the embedded http.Client
// owns the connection pool.
type backend struct {
	baseURL    string
	apiKey     string
	merchantID string
	httpClient *http.Client
	logger     *slog.Logger
}

func newBackend(apiKey, merchantID string, opts options) *backend {
	logger := opts.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}

	httpClient := opts.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.timeout}
	}

	return &backend{
		baseURL:    opts.baseURL,
		apiKey:     apiKey,
		merchantID: merchantID,
		httpClient: httpClient,
		logger:     logger,
	}
}

// send performs one network round trip. The credential pair rides on every
// request: the API key as basic-auth username and the merchant id in the
// URL path. Non-2xx responses are passed through unmodified for the caller
// to interpret; no retries happen here.
func (b *backend) send(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	endpoint := fmt.Sprintf("%s/v1/%s/%s", b.baseURL, b.merchantID, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.SetBasicAuth(b.apiKey, "")
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	httpReq.Header.Set("X-Request-Id", requestID)

	op := method + " " + path
	start := time.Now()

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, &TransportError{
			Op:      op,
			Timeout: isTimeout(err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Timeout: isTimeout(err), Err: err}
	}

	b.logger.Debug("gateway round trip",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	return resp.StatusCode, raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}

// do sends a request and decodes the response into T. Non-2xx bodies are
// decoded into a GatewayError verbatim; an unparsable error body is still
// surfaced as a GatewayError carrying the raw text as its description.
func do[T any](ctx context.Context, b *backend, method, path string, query url.Values, body any) (*T, error) {
	status, raw, err := b.send(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		var gErr GatewayError
		if err := json.Unmarshal(raw, &gErr); err != nil || gErr.Description == "" {
			gErr = GatewayError{Description: string(raw)}
		}
		gErr.HTTPStatus = status
		b.logger.Warn("gateway rejected request",
			"method", method,
			"path", path,
			"status", status,
			"category", gErr.Category,
			"error_code", gErr.Code,
		)
		return nil, &gErr
	}

	var entity T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entity); err != nil {
			return nil, &DecodingError{Entity: fmt.Sprintf("%T", entity), Err: err}
		}
	}

	return &entity, nil
}

// doList is do for collection endpoints, which return a bare JSON array.
func doList[T any](ctx context.Context, b *backend, path string, query url.Values) ([]T, error) {
	items, err := do[[]T](ctx, b, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return *items, nil
}
