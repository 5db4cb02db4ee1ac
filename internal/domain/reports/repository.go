package reports

import (
	"context"
	"time"

	"salespoint/internal/domain/catalog"
	"salespoint/internal/domain/sales"
)

// Repository is the query assembler contract against the persistence
// service. Implementations return raw rows with requested associations
// eagerly resolved; all shaping happens in the aggregation layer.
type Repository interface {
	// InventoryRows returns all products ordered by name ascending with
	// category names resolved.
	InventoryRows(ctx context.Context) ([]catalog.Product, error)

	// LatestOrders returns the newest sales orders by creation time
	// descending, items included.
	LatestOrders(ctx context.Context, limit int) ([]sales.SalesOrder, error)

	// ProductsByIDs returns the products for the given identity set.
	ProductsByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error)

	// OrderItemRows returns all order items ordered by order id
	// descending, joined to product (category, brand) and order.
	// A non-nil since limits rows to orders created at or after it.
	OrderItemRows(ctx context.Context, since *time.Time) ([]OrderItemRow, error)

	// SuppliersWithProducts returns suppliers with their related products.
	SuppliersWithProducts(ctx context.Context) ([]catalog.Supplier, error)

	// DashboardCounts returns order/supplier/product counts and summed
	// sales revenue.
	DashboardCounts(ctx context.Context) (DashboardCounts, error)

	// ReturnsBetween returns the return rows created within [start, end].
	ReturnsBetween(ctx context.Context, start, end time.Time) ([]sales.Return, error)
}
