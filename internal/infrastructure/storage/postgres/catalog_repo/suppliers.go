package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"salespoint/internal/core/apperror"
	"salespoint/internal/domain/catalog"
)

var supplierCols = []string{"id", "name", "email", "phone", "address", "created_at"}

// SupplierRepo implements catalog.SupplierRepository.
type SupplierRepo struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns all suppliers, newest first.
func (r *SupplierRepo) List(ctx context.Context) ([]catalog.Supplier, error) {
	q := r.builder.
		Select(supplierCols...).
		From("suppliers").
		OrderBy("id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewStore(err)
	}

	suppliers := []catalog.Supplier{}
	if err := pgxscan.Select(ctx, r.pool, &suppliers, sql, args...); err != nil {
		return nil, apperror.NewStore(err)
	}
	return suppliers, nil
}

// Create inserts a supplier and fills its generated identity.
func (r *SupplierRepo) Create(ctx context.Context, supplier *catalog.Supplier) error {
	q := r.builder.
		Insert("suppliers").
		Columns("name", "email", "phone", "address").
		Values(supplier.Name, supplier.Email, supplier.Phone, supplier.Address).
		Suffix("RETURNING id, created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return apperror.NewStore(err)
	}

	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&supplier.ID, &supplier.CreatedAt); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

// Ensure interface compliance
var _ catalog.SupplierRepository = (*SupplierRepo)(nil)
