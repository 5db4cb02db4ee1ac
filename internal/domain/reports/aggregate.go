package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salespoint/internal/domain/catalog"
	"salespoint/internal/domain/sales"
)

// BuildSummary turns raw dashboard counts into the four summary cards.
// Titles pluralize whenever the count is not exactly 1, zero included.
func BuildSummary(counts DashboardCounts) []SummaryEntry {
	return []SummaryEntry{
		{
			Amount: FormatAmount(float64(counts.Orders)),
			Title:  Pluralize("Total Order", counts.Orders),
			Icon:   "orders",
		},
		{
			Amount: FormatAmount(float64(counts.Suppliers)),
			Title:  Pluralize("Total Supplier", counts.Suppliers),
			Icon:   "suppliers",
		},
		{
			Amount: FormatAmount(float64(counts.Products)),
			Title:  Pluralize("Total Product", counts.Products),
			Icon:   "products",
		},
		{
			Amount: FormatCurrency(counts.Revenue.InexactFloat64()),
			Title:  "Revenue",
			Icon:   "revenue",
		},
	}
}

// DistinctProductIDs collects the product identities referenced by the
// given orders' items, deduplicated in first-seen order.
func DistinctProductIDs(orders []sales.SalesOrder) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}

// DefectBuckets distributes return rows over twelve month buckets and
// keeps only the buckets whose first-of-month date, taken in the start
// date's year, falls within the inclusive [start, end] range.
//
// Reasons classify case-insensitively into lost/return/refund; anything
// unrecognized or missing counts as other. A missing quantity counts as 0.
func DefectBuckets(rng DefectRange, rows []sales.Return) []DefectBucket {
	buckets := make([]DefectBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, row := range rows {
		qty := 0
		if row.Quantity != nil {
			qty = *row.Quantity
		}

		bucket := &buckets[int(row.CreatedAt.Month())-1]
		switch classifyReason(row.Reason) {
		case sales.ReasonLost:
			bucket.Lost += qty
		case sales.ReasonReturn:
			bucket.Return += qty
		case sales.ReasonRefund:
			bucket.Refund += qty
		default:
			bucket.Other += qty
		}
	}

	result := make([]DefectBucket, 0, 12)
	for i, bucket := range buckets {
		firstOfMonth := time.Date(rng.Start.Year(), time.Month(i+1), 1, 0, 0, 0, 0, rng.Start.Location())
		if firstOfMonth.Before(rng.Start) || firstOfMonth.After(rng.End) {
			continue
		}
		result = append(result, bucket)
	}
	return result
}

func classifyReason(reason *string) sales.ReturnReason {
	if reason == nil {
		return sales.ReasonOther
	}
	switch strings.ToLower(*reason) {
	case "lost":
		return sales.ReasonLost
	case "return":
		return sales.ReasonReturn
	case "refund":
		return sales.ReasonRefund
	default:
		return sales.ReasonOther
	}
}

// StockValue computes a supplier's total stock value as the sum of
// quantity_in_stock times cost_price over its products.
func StockValue(supplier catalog.Supplier) decimal.Decimal {
	total := decimal.Zero
	for _, p := range supplier.Products {
		total = total.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.QuantityInStock))))
	}
	return total
}

// RankSuppliers sorts suppliers by descending stock value and returns
// the top n.
func RankSuppliers(suppliers []catalog.Supplier, n int) []catalog.Supplier {
	ranked := make([]catalog.Supplier, len(suppliers))
	copy(ranked, suppliers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return StockValue(ranked[i]).GreaterThan(StockValue(ranked[j]))
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
