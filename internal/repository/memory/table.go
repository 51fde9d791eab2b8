// Package memory provides an in-process document store that implements the
// repository interfaces. It backs the "memory" database driver and the tests.
package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// table is a single collection: rows by ID plus insertion order for stable scans.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[primitive.ObjectID]T
	order []primitive.ObjectID
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[primitive.ObjectID]T)}
}

func (t *table[T]) insert(id primitive.ObjectID, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *table[T]) get(id primitive.ObjectID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// scan returns every row accepted by match, in insertion order. Never nil.
func (t *table[T]) scan(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) update(id primitive.ObjectID, mutate func(*T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return false
	}
	mutate(&row)
	t.rows[id] = row
	return true
}

// remove deletes id when match accepts the stored row.
func (t *table[T]) remove(id primitive.ObjectID, match func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok || !match(row) {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func matchAll[T any](T) bool { return true }
