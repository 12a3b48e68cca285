package collection

import (
	"context"

	"lockerroom/internal/adapters/storage/kv"
	"lockerroom/internal/domain/record"
)

// Collection is an ordered sequence of records persisted whole under a single
// key-value entry. Adds prepend, so iteration order is always newest-first.
// There is no update-in-place: records are added, deleted, or wholesale
// replaced, and every mutation rewrites the entire stored sequence.
//
// Mutations are read-modify-write against the store with no cross-writer
// locking; two processes racing on the same key resolve last-write-wins.
type Collection[T record.Identified] struct {
	store kv.Store
	key   string
}

// New creates a collection persisted under the given storage key.
func New[T record.Identified](store kv.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the storage key the collection persists under.
func (c *Collection[T]) Key() string { return c.key }

// List returns the current persisted sequence, newest first. An absent or
// unreadable value yields an empty list.
func (c *Collection[T]) List(ctx context.Context) []T {
	var items []T
	c.store.Load(ctx, c.key, &items)
	return items
}

// Add prepends item and re-persists the whole sequence.
// PRE: item carries a fresh record id
// POST: item is at the head of the stored sequence
func (c *Collection[T]) Add(ctx context.Context, item T) {
	items := append([]T{item}, c.List(ctx)...)
	c.store.Save(ctx, c.key, items)
}

// Delete removes the first record with the given id and re-persists.
// Relative order of the remaining records is unchanged.
// PRE: id is a record id
// POST: Returns true if a record was removed
func (c *Collection[T]) Delete(ctx context.Context, id int64) bool {
	items := c.List(ctx)
	for i, item := range items {
		if item.RecordID() == id {
			items = append(items[:i], items[i+1:]...)
			c.store.Save(ctx, c.key, items)
			return true
		}
	}
	return false
}

// Replace swaps the entire stored sequence for items. Used by backup import.
// PRE: items is the full desired sequence (may be empty)
// POST: The stored sequence is exactly items
func (c *Collection[T]) Replace(ctx context.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.store.Save(ctx, c.key, items)
}

// Exists reports whether anything has ever been persisted under the
// collection's key. Used to decide whether to seed starter content.
func (c *Collection[T]) Exists(ctx context.Context) bool {
	return c.store.Has(ctx, c.key)
}
