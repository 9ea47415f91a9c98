// Package session implements the storefront catalog session: an owned
// in-memory product store loaded from the remote catalog, pure view
// derivations for the storefront pages, and the optimistic mutation
// pipeline used by the admin console.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
	"github.com/mystore/catalog/pkg/retry"
)

const loadAttempts = 3

// Store owns the authoritative product list for one session.
//
// Readers only ever receive snapshots; the list is mutated through the
// [Mutator] alone. The store is authoritative for the session: remote
// failures after a local mutation never revert it.
type Store struct {
	mu       sync.RWMutex
	remote   port.RemoteCatalog
	products []domain.Product
	subs     map[int]func()
	nextSub  int
	closed   bool
}

func NewStore(remote port.RemoteCatalog) *Store {
	return &Store{remote: remote, subs: make(map[int]func())}
}

// Load fetches the product list from the remote catalog, retrying with
// backoff. On failure the previous (possibly empty) set is kept.
// A closed store is never repopulated.
func (s *Store) Load(ctx context.Context) error {
	const op = "Store.Load"

	ps, err := retry.DoWithResult(ctx, retry.RetryConfig{
		MaxAttempts: loadAttempts,
		Backoff:     retry.LinearBackoff(200 * time.Millisecond),
	}, func() ([]domain.Product, error) {
		return s.remote.FetchProducts(ctx)
	})
	if err != nil {
		slog.With("op", op).Warn(
			"failed to load products, keeping previous set", "err", err,
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if !s.replaceAll(ps) {
		return fmt.Errorf("%s: session is closed", op)
	}
	return nil
}

func (s *Store) replaceAll(ps []domain.Product) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.products = ps
	s.mu.Unlock()

	s.notify()
	return true
}

// Snapshot returns a copy of the current product list. The copy stays
// stable across later mutations; re-read after any suspension point.
func (s *Store) Snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// Subscribe registers fn to run after every store change. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close ends the session lifecycle; the store accepts no further
// mutations.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = map[int]func(){}
}

// appendNext assigns the next catalog id, appends and returns the
// stored product. Assignment and append happen under one lock so ids
// stay unique.
func (s *Store) appendNext(p domain.Product) (domain.Product, bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Product{}, false
	}
	p.ID = domain.NextID(s.products)
	s.products = append(s.products, p)
	s.mu.Unlock()

	s.notify()
	return p, true
}

func (s *Store) replace(p domain.Product) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.mu.Unlock()
			s.notify()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

func (s *Store) remove(id int) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
