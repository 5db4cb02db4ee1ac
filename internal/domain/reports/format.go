package reports

import (
	"fmt"
	"strconv"
)

// Display fallbacks for nullable associations. These strings are part of
// the external contract and must not change.
const (
	FallbackCategory = "Uncategorized"
	FallbackBrand    = "Unknown Brand"
	FallbackImage    = "/images/placeholder-product.png"

	currencySymbol = "$"
)

// FormatAmount renders a non-negative number for summary cards.
// Values above 1000 collapse to a "1.5k" style string; the boundary is
// exclusive, so 1000 renders as "1000".
func FormatAmount(value float64) string {
	if value > 1000 {
		return fmt.Sprintf("%.1fk", value/1000)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatCurrency renders an amount with the currency symbol prefixed.
func FormatCurrency(value float64) string {
	return currencySymbol + FormatAmount(value)
}

// Pluralize appends "s" to the noun when count is not exactly 1.
// Zero pluralizes.
func Pluralize(noun string, count int64) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}

// CategoryName resolves a nullable category name to its display value.
func CategoryName(name *string) string {
	if name == nil || *name == "" {
		return FallbackCategory
	}
	return *name
}

// BrandName resolves a nullable brand name to its display value.
func BrandName(name *string) string {
	if name == nil || *name == "" {
		return FallbackBrand
	}
	return *name
}

// ProductImage resolves a nullable image reference to its display value.
func ProductImage(image *string) string {
	if image == nil || *image == "" {
		return FallbackImage
	}
	return *image
}
