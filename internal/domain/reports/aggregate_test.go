package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespoint/internal/domain/catalog"
	"salespoint/internal/domain/sales"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBuildSummary(t *testing.T) {
	counts := DashboardCounts{
		Orders:    1,
		Suppliers: 0,
		Products:  1500,
		Revenue:   decimal.NewFromInt(250423),
	}

	entries := BuildSummary(counts)
	require.Len(t, entries, 4)

	assert.Equal(t, SummaryEntry{Amount: "1", Title: "Total Order", Icon: "orders"}, entries[0])
	assert.Equal(t, SummaryEntry{Amount: "0", Title: "Total Suppliers", Icon: "suppliers"}, entries[1])
	assert.Equal(t, SummaryEntry{Amount: "1.5k", Title: "Total Products", Icon: "products"}, entries[2])
	assert.Equal(t, SummaryEntry{Amount: "$250.4k", Title: "Revenue", Icon: "revenue"}, entries[3])
}

func TestDistinctProductIDs(t *testing.T) {
	orders := []sales.SalesOrder{
		{ID: 10, Items: []sales.OrderItem{{ProductID: 1}, {ProductID: 2}}},
		{ID: 9, Items: []sales.OrderItem{{ProductID: 2}, {ProductID: 3}, {ProductID: 1}}},
	}

	assert.Equal(t, []int64{1, 2, 3}, DistinctProductIDs(orders))
	assert.Nil(t, DistinctProductIDs(nil))
}

func TestDefectBuckets_Classification(t *testing.T) {
	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	rng := DefectRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	rows := []sales.Return{
		{Quantity: intPtr(3), Reason: strPtr("Lost"), CreatedAt: jan},
		{Quantity: intPtr(2), Reason: strPtr("RETURN"), CreatedAt: jan},
		{Quantity: intPtr(1), Reason: strPtr("refund"), CreatedAt: jan},
		{Quantity: intPtr(4), Reason: strPtr("damaged in transit"), CreatedAt: jan},
		{Quantity: intPtr(5), Reason: nil, CreatedAt: jan},
		{Quantity: nil, Reason: strPtr("lost"), CreatedAt: jan},
	}

	buckets := DefectBuckets(rng, rows)
	require.Len(t, buckets, 1)

	assert.Equal(t, "Jan", buckets[0].Month)
	assert.Equal(t, 3, buckets[0].Lost)
	assert.Equal(t, 2, buckets[0].Return)
	assert.Equal(t, 1, buckets[0].Refund)
	assert.Equal(t, 9, buckets[0].Other)
}

func TestDefectBuckets_RangeFilter(t *testing.T) {
	rng := DefectRange{
		Start: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	}

	buckets := DefectBuckets(rng, nil)
	require.Len(t, buckets, 3)
	assert.Equal(t, "Feb", buckets[0].Month)
	assert.Equal(t, "Mar", buckets[1].Month)
	assert.Equal(t, "Apr", buckets[2].Month)
}

func TestDefectBuckets_SumInvariant(t *testing.T) {
	rng := DefectRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	rows := []sales.Return{
		{Quantity: intPtr(3), Reason: strPtr("lost"), CreatedAt: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{Quantity: intPtr(7), Reason: strPtr("refund"), CreatedAt: time.Date(2024, time.July, 9, 0, 0, 0, 0, time.UTC)},
		{Quantity: intPtr(2), Reason: strPtr("whatever"), CreatedAt: time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC)},
	}

	buckets := DefectBuckets(rng, rows)
	require.Len(t, buckets, 12)

	total := 0
	for _, b := range buckets {
		total += b.Lost + b.Return + b.Refund + b.Other
	}
	assert.Equal(t, 12, total)
}

func TestStockValue(t *testing.T) {
	supplier := catalog.Supplier{
		Products: []catalog.Product{
			{QuantityInStock: 10, CostPrice: decimal.NewFromFloat(2.5)},
			{QuantityInStock: 4, CostPrice: decimal.NewFromInt(100)},
		},
	}

	assert.True(t, StockValue(supplier).Equal(decimal.NewFromInt(425)))
	assert.True(t, StockValue(catalog.Supplier{}).IsZero())
}

func TestRankSuppliers(t *testing.T) {
	mk := func(id int64, qty int, cost int64) catalog.Supplier {
		return catalog.Supplier{
			ID: id,
			Products: []catalog.Product{
				{QuantityInStock: qty, CostPrice: decimal.NewFromInt(cost)},
			},
		}
	}

	suppliers := []catalog.Supplier{
		mk(1, 1, 10),  // 10
		mk(2, 5, 100), // 500
		mk(3, 2, 50),  // 100
		mk(4, 0, 999), // 0
		mk(5, 3, 100), // 300
		mk(6, 4, 100), // 400
	}

	ranked := RankSuppliers(suppliers, 5)
	require.Len(t, ranked, 5)

	ids := make([]int64, len(ranked))
	for i, s := range ranked {
		ids[i] = s.ID
	}
	assert.Equal(t, []int64{2, 6, 5, 3, 1}, ids)

	// Input order is preserved, not mutated.
	assert.Equal(t, int64(1), suppliers[0].ID)

	short := RankSuppliers(suppliers[:2], 5)
	assert.Len(t, short, 2)
}
