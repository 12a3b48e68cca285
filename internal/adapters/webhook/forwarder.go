package webhook

import (
	"context"
	"net/url"
)

// Forwarder delivers a form submission to the operator's configured endpoint.
// Delivery is best-effort and fire-once: no retry, no queue. The local write
// that preceded the forward is never rolled back on failure.
type Forwarder interface {
	Forward(ctx context.Context, endpoint string, payload url.Values) error
}
