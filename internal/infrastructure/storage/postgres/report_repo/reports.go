// Package report_repo provides the PostgreSQL query assemblers behind the
// reporting core. All methods are read-only.
package report_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"salespoint/internal/core/apperror"
	"salespoint/internal/domain/catalog"
	"salespoint/internal/domain/reports"
	"salespoint/internal/domain/sales"
)

var tracer = otel.Tracer("salespoint/internal/infrastructure/storage/postgres/report_repo")

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ReportRepo) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("component", "report_repo")))
}

// InventoryRows returns all products ordered by name ascending with
// category names resolved.
func (r *ReportRepo) InventoryRows(ctx context.Context) ([]catalog.Product, error) {
	ctx, span := r.startSpan(ctx, "report.inventory_rows")
	defer span.End()

	q := r.builder.
		Select(
			"p.id", "p.name", "p.category_id", "p.brand_id", "p.supplier_id",
			"p.quantity_in_stock", "p.unit_price", "p.cost_price", "p.status",
			"p.image", "p.created_at",
			"c.name AS category_name",
		).
		From("products p").
		LeftJoin("categories c ON p.category_id = c.id").
		OrderBy("p.name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	products := []catalog.Product{}
	if err := pgxscan.Select(ctx, r.pool, &products, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}

	span.SetAttributes(attribute.Int("rows", len(products)))
	return products, nil
}

// LatestOrders returns the newest sales orders by creation time
// descending, items included.
func (r *ReportRepo) LatestOrders(ctx context.Context, limit int) ([]sales.SalesOrder, error) {
	ctx, span := r.startSpan(ctx, "report.latest_orders")
	defer span.End()

	q := r.builder.
		Select("id", "order_code", "total_price", "created_at").
		From("sales_orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	orders := []sales.SalesOrder{}
	if err := pgxscan.Select(ctx, r.pool, &orders, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int64, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	itemsQ := r.builder.
		Select("id", "order_id", "product_id", "quantity", "total_price").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderIDs})

	sql, args, err = itemsQ.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	items := []sales.OrderItem{}
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}

	byOrder := make(map[int64][]sales.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

// ProductsByIDs returns the products for the given identity set.
func (r *ReportRepo) ProductsByIDs(ctx context.Context, ids []int64) ([]catalog.Product, error) {
	ctx, span := r.startSpan(ctx, "report.products_by_ids")
	defer span.End()

	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	q := r.builder.
		Select(
			"id", "name", "category_id", "brand_id", "supplier_id",
			"quantity_in_stock", "unit_price", "cost_price", "status",
			"image", "created_at",
		).
		From("products").
		Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	products := []catalog.Product{}
	if err := pgxscan.Select(ctx, r.pool, &products, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}
	return products, nil
}

// OrderItemRows returns all order items ordered by order id descending,
// joined to product (category, brand) and sales order.
func (r *ReportRepo) OrderItemRows(ctx context.Context, since *time.Time) ([]reports.OrderItemRow, error) {
	ctx, span := r.startSpan(ctx, "report.order_item_rows")
	defer span.End()

	q := r.builder.
		Select(
			"oi.id AS order_item_id",
			"oi.order_id",
			"o.order_code",
			"oi.quantity",
			"oi.total_price",
			"p.name AS product_name",
			"p.image AS product_image",
			"p.status",
			"c.name AS category_name",
			"b.name AS brand_name",
		).
		From("order_items oi").
		Join("sales_orders o ON oi.order_id = o.id").
		Join("products p ON oi.product_id = p.id").
		LeftJoin("categories c ON p.category_id = c.id").
		LeftJoin("brands b ON p.brand_id = b.id").
		OrderBy("oi.order_id DESC")

	if since != nil {
		q = q.Where(squirrel.GtOrEq{"o.created_at": *since})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	rows := []reports.OrderItemRow{}
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

// SuppliersWithProducts returns all suppliers with their related products
// eagerly resolved.
func (r *ReportRepo) SuppliersWithProducts(ctx context.Context) ([]catalog.Supplier, error) {
	ctx, span := r.startSpan(ctx, "report.suppliers_with_products")
	defer span.End()

	q := r.builder.
		Select("id", "name", "email", "phone", "address", "created_at").
		From("suppliers").
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	suppliers := []catalog.Supplier{}
	if err := pgxscan.Select(ctx, r.pool, &suppliers, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}
	if len(suppliers) == 0 {
		return suppliers, nil
	}

	productsQ := r.builder.
		Select(
			"id", "name", "category_id", "brand_id", "supplier_id",
			"quantity_in_stock", "unit_price", "cost_price", "status",
			"image", "created_at",
		).
		From("products").
		Where("supplier_id IS NOT NULL")

	sql, args, err = productsQ.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	products := []catalog.Product{}
	if err := pgxscan.Select(ctx, r.pool, &products, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}

	bySupplier := make(map[int64][]catalog.Product)
	for _, p := range products {
		if p.SupplierID == nil {
			continue
		}
		bySupplier[*p.SupplierID] = append(bySupplier[*p.SupplierID], p)
	}
	for i := range suppliers {
		suppliers[i].Products = bySupplier[suppliers[i].ID]
	}
	return suppliers, nil
}

// DashboardCounts returns order/supplier/product counts and summed
// sales revenue.
func (r *ReportRepo) DashboardCounts(ctx context.Context) (reports.DashboardCounts, error) {
	ctx, span := r.startSpan(ctx, "report.dashboard_counts")
	defer span.End()

	var counts reports.DashboardCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sales_orders),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM products),
			COALESCE((SELECT SUM(total_price) FROM sales_orders), 0)
	`).Scan(&counts.Orders, &counts.Suppliers, &counts.Products, &counts.Revenue)
	if err != nil {
		return reports.DashboardCounts{}, apperror.NewStore(err)
	}
	return counts, nil
}

// ReturnsBetween returns the return rows created within [start, end].
func (r *ReportRepo) ReturnsBetween(ctx context.Context, start, end time.Time) ([]sales.Return, error) {
	ctx, span := r.startSpan(ctx, "report.returns_between")
	defer span.End()

	q := r.builder.
		Select("id", "quantity", "reason", "created_at").
		From("returns").
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.LtOrEq{"created_at": end})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	rows := []sales.Return{}
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}
	return rows, nil
}

// Ensure interface compliance
var _ reports.Repository = (*ReportRepo)(nil)
