package catalog

import (
	"context"
	"fmt"

	"salespoint/internal/core/apperror"
	"salespoint/pkg/logger"
)

// AuditLogger records catalog writes. A nil logger disables auditing.
type AuditLogger interface {
	LogCreate(ctx context.Context, entityType string, entityID int64, payload any)
}

// Service provides catalog read and write operations.
type Service struct {
	products  ProductRepository
	suppliers SupplierRepository
	audit     AuditLogger
}

// NewService creates a new catalog service.
func NewService(products ProductRepository, suppliers SupplierRepository, audit AuditLogger) *Service {
	return &Service{products: products, suppliers: suppliers, audit: audit}
}

// ListProducts returns all products.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.products.List(ctx)
}

// CreateProduct validates and stores a new product.
func (s *Service) CreateProduct(ctx context.Context, product *Product) error {
	if product.Name == "" {
		return apperror.NewValidation("product name is required")
	}
	if product.QuantityInStock < 0 {
		return apperror.NewValidation("quantity_in_stock must not be negative")
	}

	if err := s.products.Create(ctx, product); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	if s.audit != nil {
		s.audit.LogCreate(ctx, "product", product.ID, product)
	}
	logger.Info(ctx, "product created", "product_id", product.ID, "name", product.Name)
	return nil
}

// ListSuppliers returns all suppliers.
func (s *Service) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	return s.suppliers.List(ctx)
}

// CreateSupplier validates and stores a new supplier.
func (s *Service) CreateSupplier(ctx context.Context, supplier *Supplier) error {
	if supplier.Name == "" {
		return apperror.NewValidation("supplier name is required")
	}

	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}

	if s.audit != nil {
		s.audit.LogCreate(ctx, "supplier", supplier.ID, supplier)
	}
	logger.Info(ctx, "supplier created", "supplier_id", supplier.ID, "name", supplier.Name)
	return nil
}
