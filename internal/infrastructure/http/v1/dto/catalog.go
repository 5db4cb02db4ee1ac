package dto

import (
	"github.com/shopspring/decimal"

	"salespoint/internal/domain/catalog"
)

// CreateProductRequest is the POST /products body.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	CategoryID      *int64          `json:"category_id"`
	BrandID         *int64          `json:"brand_id"`
	SupplierID      *int64          `json:"supplier_id"`
	QuantityInStock int             `json:"quantity_in_stock"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	Status          string          `json:"status"`
	Image           *string         `json:"image"`
}

// ToModel converts the request to a domain product.
func (r *CreateProductRequest) ToModel() *catalog.Product {
	return &catalog.Product{
		Name:            r.Name,
		CategoryID:      r.CategoryID,
		BrandID:         r.BrandID,
		SupplierID:      r.SupplierID,
		QuantityInStock: r.QuantityInStock,
		UnitPrice:       r.UnitPrice,
		CostPrice:       r.CostPrice,
		Status:          r.Status,
		Image:           r.Image,
	}
}

// CreateSupplierRequest is the POST /suppliers body.
type CreateSupplierRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ToModel converts the request to a domain supplier.
func (r *CreateSupplierRequest) ToModel() *catalog.Supplier {
	return &catalog.Supplier{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
