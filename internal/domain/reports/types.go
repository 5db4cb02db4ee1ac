// Package reports provides the read-only reporting core: query assembler
// contracts, pure aggregation and response formatting.
package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryEntry is one dashboard summary card.
type SummaryEntry struct {
	Amount string `json:"amount"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
}

// DashboardCounts carries the raw totals the summary is built from.
type DashboardCounts struct {
	Orders    int64
	Suppliers int64
	Products  int64
	Revenue   decimal.Decimal
}

// InventoryRow is one row of the inventory report.
type InventoryRow struct {
	Name            string          `json:"name"`
	Category        CategoryRef     `json:"category"`
	QuantityInStock int             `json:"quantity_in_stock"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Status          string          `json:"status"`
}

// CategoryRef is the nested category shape of the inventory report.
type CategoryRef struct {
	Name string `json:"name"`
}

// PurchasedItem is one product referenced by the latest sales orders.
type PurchasedItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// OrderItemRow is the raw joined row behind the order-item report:
// order item plus product (category, brand) and sales order.
type OrderItemRow struct {
	OrderItemID  int64           `db:"order_item_id"`
	OrderID      int64           `db:"order_id"`
	OrderCode    string          `db:"order_code"`
	Quantity     int             `db:"quantity"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	ProductName  string          `db:"product_name"`
	ProductImage *string         `db:"product_image"`
	CategoryName *string         `db:"category_name"`
	BrandName    *string         `db:"brand_name"`
	Status       string          `db:"status"`
}

// OrderItemEntry is the externally stable order-item report shape.
type OrderItemEntry struct {
	ID           int64           `json:"id"`
	OrderItemID  int64           `json:"order_item_id"`
	ProductImage string          `json:"productImage"`
	ProductName  string          `json:"productName"`
	OrderCode    string          `json:"orderCode"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Brand        string          `json:"brand"`
	Status       string          `json:"status"`
}

// DefectBucket accumulates return quantities for one calendar month.
type DefectBucket struct {
	Month  string `json:"month"`
	Lost   int    `json:"lost"`
	Return int    `json:"return"`
	Refund int    `json:"refund"`
	Other  int    `json:"other"`
}

// DefectRange is the inclusive [Start, End] window of a defect report.
type DefectRange struct {
	Start time.Time
	End   time.Time
}
