package webhook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// HTTPForwarder POSTs payloads to the webhook endpoint as a flat
// form-encoded body. Only HTTP-level success or failure is observed; the
// response body is discarded unread.
type HTTPForwarder struct {
	client *http.Client
}

// NewHTTPForwarder creates a forwarder on the given HTTP client. A nil
// client uses http.DefaultClient.
func NewHTTPForwarder(client *http.Client) *HTTPForwarder {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPForwarder{client: client}
}

// Forward issues a single form-encoded POST to endpoint.
// PRE: endpoint is a non-empty URL
// POST: Returns nil on a 2xx response, an error otherwise
func (f *HTTPForwarder) Forward(ctx context.Context, endpoint string, payload url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(payload.Encode()))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Warn("webhook_forward_failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("webhook_forward_rejected", "endpoint", endpoint, "status", resp.StatusCode)
		return fmt.Errorf("webhook responded %s", resp.Status)
	}

	slog.Info("webhook_forwarded", "endpoint", endpoint, "fields", len(payload))
	return nil
}

// NoopForwarder accepts every payload without sending anything. Used in
// development and tests.
type NoopForwarder struct{}

// NewNoopForwarder creates a new NoopForwarder.
func NewNoopForwarder() *NoopForwarder {
	return &NoopForwarder{}
}

// Forward logs the payload and reports success without delivering it.
func (f *NoopForwarder) Forward(_ context.Context, endpoint string, payload url.Values) error {
	slog.Info("noop_webhook_forward", "endpoint", endpoint, "fields", len(payload))
	return nil
}
