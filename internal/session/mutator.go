package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
)

const remoteTimeout = 10 * time.Second

// ConfirmFunc gates a delete. It must present the product to the user
// and report the decision; a declined delete is a no-op.
type ConfirmFunc func(domain.Product) bool

// Mutator is the single writer to the session [Store].
//
// Every mutation is applied locally first and synchronously, then
// pushed to the remote catalog in the background. A remote failure is
// logged and never rolls back the local change; remote calls are never
// retried. This is the documented eventual-consistency policy of the
// admin console, not an oversight.
type Mutator struct {
	store   *Store
	remote  port.RemoteCatalog
	confirm ConfirmFunc
	wg      sync.WaitGroup
}

func NewMutator(store *Store, remote port.RemoteCatalog, confirm ConfirmFunc) *Mutator {
	if confirm == nil {
		panic("session: nil confirm gate") // develop mistake
	}
	return &Mutator{store: store, remote: remote, confirm: confirm}
}

// Create validates the draft, assigns the next catalog id, appends the
// product to the store and issues the remote create.
func (m *Mutator) Create(draft domain.Product) (domain.Product, error) {
	const op = "Mutator.Create"

	if err := draft.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := m.store.appendNext(draft.Normalize())
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: session is closed", op)
	}

	m.background(op, p.ID, func(ctx context.Context) error {
		return m.remote.CreateProduct(ctx, p)
	})
	return p, nil
}

// Update validates, replaces the product with the matching id and
// issues the remote update with the allow-listed fields. The id is
// immutable across updates.
func (m *Mutator) Update(p domain.Product) error {
	const op = "Mutator.Update"

	if err := p.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p = p.Normalize()
	if !m.store.replace(p) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	patch := domain.PatchOf(p)
	m.background(op, p.ID, func(ctx context.Context) error {
		return m.remote.UpdateProduct(ctx, p.ID, patch)
	})
	return nil
}

// Delete asks the confirm gate first. Declined reports false with no
// mutation. Confirmed removes the product locally and issues the
// remote delete; the local removal stands even if the remote fails.
func (m *Mutator) Delete(id int) (bool, error) {
	const op = "Mutator.Delete"

	p, err := m.store.Get(id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !m.confirm(p) {
		return false, nil
	}

	if !m.store.remove(id) {
		return false, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	m.background(op, id, func(ctx context.Context) error {
		return m.remote.DeleteProduct(ctx, id)
	})
	return true, nil
}

// Close drains the in-flight remote calls.
func (m *Mutator) Close() {
	m.wg.Wait()
}

// background fires the remote call without blocking the caller. The
// local mutation is already visible when the call starts.
func (m *Mutator) background(op string, productID int, fn func(context.Context) error) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			slog.With("op", op).Error(
				"remote sync failed, local change kept",
				"productID", productID, "err", err,
			)
		}
	}()
}
