package catalog

import "context"

// ProductRepository persists products.
type ProductRepository interface {
	// List returns all products, newest first.
	List(ctx context.Context) ([]Product, error)

	// Create inserts a product and fills its generated identity.
	Create(ctx context.Context, product *Product) error
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	// List returns all suppliers, newest first.
	List(ctx context.Context) ([]Supplier, error)

	// Create inserts a supplier and fills its generated identity.
	Create(ctx context.Context, supplier *Supplier) error
}
