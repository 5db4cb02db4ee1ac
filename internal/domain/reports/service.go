package reports

import (
	"context"
	"fmt"
	"time"

	"salespoint/internal/domain/catalog"
)

// latestOrderCount is how many recent orders feed the purchased-items
// report, and topSupplierCount how many suppliers the ranking keeps.
const (
	latestOrderCount = 5
	topSupplierCount = 5
)

// DefaultPeriod is the order-item report window applied when the caller
// does not name one.
const DefaultPeriod = "7days"

// SummaryCache caches the dashboard summary between requests.
// A nil cache is valid and disables caching.
type SummaryCache interface {
	GetSummary(ctx context.Context) ([]SummaryEntry, bool)
	SetSummary(ctx context.Context, entries []SummaryEntry)
}

// Service provides report generation operations.
type Service struct {
	repo  Repository
	cache SummaryCache
}

// NewService creates a new reports service.
func NewService(repo Repository, cache SummaryCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// DashboardSummary produces the four dashboard summary cards.
func (s *Service) DashboardSummary(ctx context.Context) ([]SummaryEntry, error) {
	if s.cache != nil {
		if entries, ok := s.cache.GetSummary(ctx); ok {
			return entries, nil
		}
	}

	counts, err := s.repo.DashboardCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	entries := BuildSummary(counts)
	if s.cache != nil {
		s.cache.SetSummary(ctx, entries)
	}
	return entries, nil
}

// InventoryReport lists all products by name with resolved category names.
func (s *Service) InventoryReport(ctx context.Context) ([]InventoryRow, error) {
	products, err := s.repo.InventoryRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory rows: %w", err)
	}

	rows := make([]InventoryRow, len(products))
	for i, p := range products {
		rows[i] = InventoryRow{
			Name:            p.Name,
			Category:        CategoryRef{Name: CategoryName(p.CategoryName)},
			QuantityInStock: p.QuantityInStock,
			UnitPrice:       p.UnitPrice,
			Status:          p.Status,
		}
	}
	return rows, nil
}

// LatestPurchasedItems returns the distinct products referenced by the
// five newest sales orders. The product fetch depends on the order fetch,
// so the two reads stay sequential.
func (s *Service) LatestPurchasedItems(ctx context.Context) ([]PurchasedItem, error) {
	orders, err := s.repo.LatestOrders(ctx, latestOrderCount)
	if err != nil {
		return nil, fmt.Errorf("latest orders: %w", err)
	}

	ids := DistinctProductIDs(orders)
	if len(ids) == 0 {
		return []PurchasedItem{}, nil
	}

	products, err := s.repo.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("products by ids: %w", err)
	}

	byID := make(map[int64]PurchasedItem, len(products))
	for _, p := range products {
		byID[p.ID] = PurchasedItem{
			ID:    p.ID,
			Name:  p.Name,
			Image: ProductImage(p.Image),
		}
	}

	// Keep first-purchased order for a stable response.
	items := make([]PurchasedItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// OrderItemReport lists order items joined to product and order data,
// restricted to the orders created within the requested period.
func (s *Service) OrderItemReport(ctx context.Context, period string) ([]OrderItemEntry, error) {
	rows, err := s.repo.OrderItemRows(ctx, periodStart(period, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("order item rows: %w", err)
	}

	entries := make([]OrderItemEntry, len(rows))
	for i, row := range rows {
		entries[i] = OrderItemEntry{
			ID:           row.OrderID,
			OrderItemID:  row.OrderItemID,
			ProductImage: ProductImage(row.ProductImage),
			ProductName:  row.ProductName,
			OrderCode:    row.OrderCode,
			Category:     CategoryName(row.CategoryName),
			Quantity:     row.Quantity,
			TotalPrice:   row.TotalPrice,
			Brand:        BrandName(row.BrandName),
			Status:       row.Status,
		}
	}
	return entries, nil
}

// periodStart maps a period name to the inclusive lower bound of the
// order window. Unknown values fall back to the default period; "all"
// disables the filter.
func periodStart(period string, now time.Time) *time.Time {
	var days int
	switch period {
	case "all":
		return nil
	case "30days":
		days = 30
	case "90days":
		days = 90
	case "7days":
		days = 7
	default:
		days = 7
	}
	since := now.AddDate(0, 0, -days)
	return &since
}

// TopSuppliers returns the five suppliers with the highest total stock
// value.
func (s *Service) TopSuppliers(ctx context.Context) ([]catalog.Supplier, error) {
	suppliers, err := s.repo.SuppliersWithProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("suppliers with products: %w", err)
	}
	return RankSuppliers(suppliers, topSupplierCount), nil
}

// DefectReport buckets return rows by month over the inclusive
// [start, end] range.
func (s *Service) DefectReport(ctx context.Context, start, end time.Time) ([]DefectBucket, error) {
	rows, err := s.repo.ReturnsBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("returns between: %w", err)
	}
	return DefectBuckets(DefectRange{Start: start, End: end}, rows), nil
}
