package orchestrators

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"lockerroom/internal/adapters/email"
	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/adapters/storage/kv"
	"lockerroom/internal/adapters/storage/settings"
	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/resource"
)

// memKV is an in-memory kv.Store for orchestrator tests.
type memKV struct {
	values map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string][]byte)}
}

// Load implements kv.Store.
// PRE: into is a pointer
// POST: fills into when the key holds a decodable value
func (m *memKV) Load(_ context.Context, key string, into any) bool {
	raw, ok := m.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, into) == nil
}

// Save implements kv.Store.
// PRE: value is JSON-encodable
// POST: value is stored
func (m *memKV) Save(_ context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.values[key] = raw
}

// Has implements kv.Store.
// PRE: key is non-empty
// POST: reports presence
func (m *memKV) Has(_ context.Context, key string) bool {
	_, ok := m.values[key]
	return ok
}

var _ kv.Store = (*memKV)(nil)

// testCollections wires every collection and the settings store onto one
// in-memory kv backend.
type testCollections struct {
	KV            *memKV
	Members       *collection.Collection[member.Member]
	Announcements *collection.Collection[announcement.Announcement]
	Events        *collection.Collection[event.Event]
	Resources     *collection.Collection[resource.Resource]
	Products      *collection.Collection[product.Product]
	Settings      *settings.Store
}

func newTestCollections() *testCollections {
	store := newMemKV()
	return &testCollections{
		KV:            store,
		Members:       collection.New[member.Member](store, "members"),
		Announcements: collection.New[announcement.Announcement](store, "announcements"),
		Events:        collection.New[event.Event](store, "events"),
		Resources:     collection.New[resource.Resource](store, "resources"),
		Products:      collection.New[product.Product](store, "products"),
		Settings:      settings.NewStore(store),
	}
}

func (tc *testCollections) backupDeps() BackupDeps {
	return BackupDeps{
		Members:       tc.Members,
		Announcements: tc.Announcements,
		Events:        tc.Events,
		Resources:     tc.Resources,
		Products:      tc.Products,
	}
}

func (tc *testCollections) seedDeps() SeedContentDeps {
	return SeedContentDeps{
		Members:       tc.Members,
		Announcements: tc.Announcements,
		Events:        tc.Events,
		Resources:     tc.Resources,
		Products:      tc.Products,
	}
}

// fakeForwarder records forwards and fails on demand.
type fakeForwarder struct {
	endpoint string
	payload  url.Values
	calls    int
	err      error
}

// Forward implements webhook.Forwarder.
// PRE: valid parameters
// POST: records the call, returns the injected error
func (f *fakeForwarder) Forward(_ context.Context, endpoint string, payload url.Values) error {
	f.calls++
	f.endpoint = endpoint
	f.payload = payload
	return f.err
}

// fakeSender records notification emails and fails on demand.
type fakeSender struct {
	reqs []email.SendRequest
	err  error
}

// Send implements email.Sender.
// PRE: valid parameters
// POST: records the request, returns the injected error
func (f *fakeSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return email.SendResult{}, f.err
	}
	return email.SendResult{MessageID: "fake", SentAt: time.Now()}, nil
}
