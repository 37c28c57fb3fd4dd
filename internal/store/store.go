// Package store holds the console's client-side copies of the gateway
// collections and funnels every mutation through a confirmed round trip:
// local state changes only after the gateway acknowledges.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bako110/pausemanager/internal/gateway"
	"github.com/bako110/pausemanager/internal/validation"
)

// ErrBusy rejects a Load while a previous one for the same store is still in
// flight; duplicate concurrent fetches are never issued.
var ErrBusy = errors.New("a load is already in progress")

// ErrNotConfirmed rejects a removal that skipped the explicit yes/no
// decision point.
var ErrNotConfirmed = errors.New("deletion requires confirmation")

// ValidationError carries field-level violations detected before any network
// call. It never reaches the gateway and is resolved inside the form view.
type ValidationError struct {
	Fields validation.Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// ops binds a store to one gateway collection.
type ops[T any] struct {
	health func(context.Context) error
	fetch  func(context.Context) ([]T, error)
	create func(context.Context, T) (T, error)
	update func(context.Context, string, T) (*T, error)
	remove func(context.Context, string) error
}

// Store is the in-memory copy of one entity collection. All durable state
// lives gateway-side; the store only mirrors it between round trips.
type Store[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool

	id       func(T) string
	validate func(*T) validation.Violations
	merge    func(existing, patch T) T
	ops      ops[T]
}

// Items returns a snapshot copy of the collection.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the current collection size.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Load fetches the full collection and replaces the store contents. The
// health probe runs first; any failure along the way leaves the previous
// contents untouched and reads as a gateway outage.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if err := s.ops.health(ctx); err != nil {
		return err
	}
	items, err := s.ops.fetch(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Create validates the draft locally, then asks the gateway to persist it.
// On success the canonical record returned by the gateway is appended,
// with its server-assigned id and timestamps; the store never invents
// identifiers.
func (s *Store[T]) Create(ctx context.Context, draft T) (T, error) {
	if v := s.validate(&draft); !v.Empty() {
		var zero T
		return zero, &ValidationError{Fields: v}
	}
	rec, err := s.ops.create(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	s.items = append(s.items, rec)
	s.mu.Unlock()
	return rec, nil
}

// Update persists the patch, then applies it to the matching local record.
// When the gateway echoes the canonical record, that replaces the local
// merge wholesale.
func (s *Store[T]) Update(ctx context.Context, id string, patch T) error {
	canonical, err := s.ops.update(ctx, id, patch)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) != id {
			continue
		}
		if canonical != nil {
			s.items[i] = *canonical
		} else {
			s.items[i] = s.merge(s.items[i], patch)
		}
		return nil
	}
	return nil
}

// Remove deletes the record gateway-side, then locally. The confirmed flag
// carries the operator's explicit yes/no decision; without it no request is
// sent. On failure the collection is left exactly as it was.
func (s *Store[T]) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.ops.remove(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}
