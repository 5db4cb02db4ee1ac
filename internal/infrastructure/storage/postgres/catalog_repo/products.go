// Package catalog_repo provides PostgreSQL implementations for catalog
// repositories.
package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"salespoint/internal/core/apperror"
	"salespoint/internal/domain/catalog"
)

var productCols = []string{
	"id", "name", "category_id", "brand_id", "supplier_id",
	"quantity_in_stock", "unit_price", "cost_price", "status", "image", "created_at",
}

// ProductRepo implements catalog.ProductRepository.
type ProductRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewProductRepo creates a new product repository.
func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns all products, newest first.
func (r *ProductRepo) List(ctx context.Context) ([]catalog.Product, error) {
	q := r.builder.
		Select(productCols...).
		From("products").
		OrderBy("id DESC")

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

// Create inserts a product and fills its generated identity.
func (r *ProductRepo) Create(ctx context.Context, product *catalog.Product) error {
	q := r.builder.
		Insert("products").
		Columns("name", "category_id", "brand_id", "supplier_id",
			"quantity_in_stock", "unit_price", "cost_price", "status", "image").
		Values(product.Name, product.CategoryID, product.BrandID, product.SupplierID,
			product.QuantityInStock, product.UnitPrice, product.CostPrice,
			product.Status, product.Image).
		Suffix("RETURNING id, created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewStore(err)
	}

	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&product.ID, &product.CreatedAt); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

// Ensure interface compliance
var _ catalog.ProductRepository = (*ProductRepo)(nil)
