package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
)

var _ port.CatalogReader = (*Service)(nil)
var _ port.CatalogWriter = (*Service)(nil)

// Service implements the catalog CRUD over the products repository.
// After every successful write it publishes a change event; a produce
// failure is logged and never fails the request.
type Service struct {
	repo    port.ProductsRepository
	changes port.ChangesProducer
}

// New constructs the service. changes may be nil when no
// change feed is configured.
func New(repo port.ProductsRepository, changes port.ChangesProducer) Service {
	return Service{repo: repo, changes: changes}
}

func (s Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateProduct(ctx, p.Normalize())
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emitChange(ctx, domain.ProductChange{
		Op: domain.ChangeCreate, Product: created,
	})
	return created, nil
}

func (s Service) UpdateProduct(
	ctx context.Context, ref domain.ProductRef, patch domain.ProductPatch,
) (domain.Product, error) {
	const op = "Service.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdateProduct(ctx, ref, patch)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emitChange(ctx, domain.ProductChange{
		Op: domain.ChangeUpdate, Product: updated,
	})
	return updated, nil
}

func (s Service) DeleteProduct(
	ctx context.Context, ref domain.ProductRef,
) error {
	const op = "Service.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteProduct(ctx, ref); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emitChange(ctx, domain.ProductChange{
		Op:      domain.ChangeDelete,
		Product: domain.Product{ID: ref.ID},
	})
	return nil
}

func (s Service) emitChange(ctx context.Context, c domain.ProductChange) {
	const op = "Service.emitChange"

	if s.changes == nil {
		return
	}
	if err := s.changes.ProduceChange(ctx, c); err != nil {
		slog.With("op", op).Error(
			"failed to produce change event",
			"changeOp", c.Op, "productID", c.Product.ID, "err", err,
		)
	}
}
