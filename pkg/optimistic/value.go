// Package optimistic holds a locally visible value that is changed before the
// remote write completes and restored when the write fails.
package optimistic

import (
	"context"
	"sync"
)

type Value[T any] struct {
	mu      sync.Mutex
	v       T
	version uint64
}

func New[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Update shows next immediately, then calls write. On success the value the
// remote side confirmed becomes visible; on failure the snapshot taken before
// the change is restored and the write error is returned.
//
// A later update that already replaced the value is never overwritten by an
// earlier update's rollback or confirmation.
func (o *Value[T]) Update(ctx context.Context, next T, write func(ctx context.Context, next T) (T, error)) error {
	o.mu.Lock()
	prev := o.v
	o.v = next
	o.version++
	mine := o.version
	o.mu.Unlock()

	confirmed, err := write(ctx, next)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.version != mine {
		return err
	}
	if err != nil {
		o.v = prev
		return err
	}
	o.v = confirmed
	return nil
}
