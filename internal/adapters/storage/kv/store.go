package kv

import "context"

// Store is the persistent key-value contract every collection sits on.
//
// The error model is deliberate: reads fall back and writes are best-effort.
// A caller can never distinguish "storage broke" from "nothing stored" —
// failures degrade to defaults, mirroring how the app treats local storage
// as a cache it can always rebuild from seeds or a backup import.
type Store interface {
	// Load JSON-decodes the value at key into `into` and reports whether a
	// usable value was found. Absence, read failure and decode failure all
	// return false and leave `into` untouched.
	Load(ctx context.Context, key string, into any) bool

	// Save JSON-encodes value and upserts it at key. Failures are swallowed
	// (logged, never returned).
	Save(ctx context.Context, key string, value any)

	// Has reports whether any value is stored at key, without decoding it.
	Has(ctx context.Context, key string) bool
}
