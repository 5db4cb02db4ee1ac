// Package catalog provides the product, category, brand and supplier
// reference entities.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a stocked item.
type Product struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`

	// Nullable reference entities. Missing associations are resolved to
	// display fallbacks at format time, never stored.
	CategoryID *int64 `db:"category_id" json:"category_id,omitempty"`
	BrandID    *int64 `db:"brand_id" json:"brand_id,omitempty"`
	SupplierID *int64 `db:"supplier_id" json:"supplier_id,omitempty"`

	QuantityInStock int             `db:"quantity_in_stock" json:"quantity_in_stock"`
	UnitPrice       decimal.Decimal `db:"unit_price" json:"unit_price"`
	CostPrice       decimal.Decimal `db:"cost_price" json:"cost_price"`
	Status          string          `db:"status" json:"status"`
	Image           *string         `db:"image" json:"image,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Resolved association names (populated by joined reads only).
	CategoryName *string `db:"category_name" json:"-"`
	BrandName    *string `db:"brand_name" json:"-"`
}

// Category is a named product grouping.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Brand is a named product brand.
type Brand struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Supplier provides products.
type Supplier struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Email   *string `db:"email" json:"email,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Products related to this supplier (populated by eager reads only).
	Products []Product `db:"-" json:"products,omitempty"`
}
