package settings

import (
	"context"
	"strings"

	"lockerroom/internal/adapters/storage/kv"
)

const webhookURLKey = "webhook-url"

// Store holds operator-editable configuration persisted alongside the
// collections. The webhook URL is one shared value injected into both the
// join and apply flows — neither form reads storage on its own.
type Store struct {
	kv kv.Store
}

// NewStore creates a settings store on the given kv backend.
func NewStore(kvStore kv.Store) *Store {
	return &Store{kv: kvStore}
}

// WebhookURL returns the configured webhook endpoint, empty when none is set.
func (s *Store) WebhookURL(ctx context.Context) string {
	var url string
	s.kv.Load(ctx, webhookURLKey, &url)
	return strings.TrimSpace(url)
}

// SetWebhookURL stores the webhook endpoint. An empty string disables
// forwarding.
func (s *Store) SetWebhookURL(ctx context.Context, url string) {
	s.kv.Save(ctx, webhookURLKey, strings.TrimSpace(url))
}
