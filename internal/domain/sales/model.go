// Package sales provides sales order, order item and return entities.
package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder is a customer purchase.
type SalesOrder struct {
	ID         int64           `db:"id" json:"id"`
	OrderCode  string          `db:"order_code" json:"order_code"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem is a single product line on a sales order.
type OrderItem struct {
	ID         int64           `db:"id" json:"id"`
	OrderID    int64           `db:"order_id" json:"order_id"`
	ProductID  int64           `db:"product_id" json:"product_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
}

// ReturnReason classifies why stock came back.
type ReturnReason string

const (
	ReasonLost   ReturnReason = "lost"
	ReasonReturn ReturnReason = "return"
	ReasonRefund ReturnReason = "refund"
	ReasonOther  ReturnReason = "other"
)

// Return records product units lost, returned or refunded.
// Reason is free text in the store; classification happens at
// aggregation time and is case-insensitive.
type Return struct {
	ID        int64     `db:"id" json:"id"`
	Quantity  *int      `db:"quantity" json:"quantity,omitempty"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
