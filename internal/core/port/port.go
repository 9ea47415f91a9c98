package port

import (
	"context"

	"github.com/mystore/catalog/internal/core/domain"
)

// Inbound ports, implemented by the core service.

type CatalogReader interface {
	ListProducts(context.Context) ([]domain.Product, error)
}

type CatalogWriter interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(
		context.Context, domain.ProductRef, domain.ProductPatch,
	) (domain.Product, error)
	DeleteProduct(context.Context, domain.ProductRef) error
}

// Outbound ports, implemented by adapters.

type ProductsRepository interface {
	ListProducts(context.Context) ([]domain.Product, error)
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(
		context.Context, domain.ProductRef, domain.ProductPatch,
	) (domain.Product, error)
	DeleteProduct(context.Context, domain.ProductRef) error
}

type ChangesProducer interface {
	ProduceChange(context.Context, domain.ProductChange) error
	Close()
}

// RemoteCatalog is the session-side view of the catalog service.
type RemoteCatalog interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	CreateProduct(context.Context, domain.Product) error
	UpdateProduct(context.Context, int, domain.ProductPatch) error
	DeleteProduct(context.Context, int) error
}
