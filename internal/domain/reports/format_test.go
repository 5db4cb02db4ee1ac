package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0"},
		{"small integer", 42, "42"},
		{"boundary is exclusive", 1000, "1000"},
		{"just above boundary", 1001, "1.0k"},
		{"fifteen hundred", 1500, "1.5k"},
		{"large value", 250423, "250.4k"},
		{"decimal below boundary", 999.5, "999.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.value))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$500", FormatCurrency(500))
	assert.Equal(t, "$12.5k", FormatCurrency(12500))
	assert.Equal(t, "$1000", FormatCurrency(1000))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "Total Orders", Pluralize("Total Order", 0))
	assert.Equal(t, "Total Order", Pluralize("Total Order", 1))
	assert.Equal(t, "Total Orders", Pluralize("Total Order", 2))
}

func TestFallbackResolvers(t *testing.T) {
	name := "Electronics"
	empty := ""

	assert.Equal(t, "Electronics", CategoryName(&name))
	assert.Equal(t, FallbackCategory, CategoryName(nil))
	assert.Equal(t, FallbackCategory, CategoryName(&empty))

	brand := "Acme"
	assert.Equal(t, "Acme", BrandName(&brand))
	assert.Equal(t, FallbackBrand, BrandName(nil))
	assert.Equal(t, FallbackBrand, BrandName(&empty))

	img := "/images/widget.png"
	assert.Equal(t, "/images/widget.png", ProductImage(&img))
	assert.Equal(t, FallbackImage, ProductImage(nil))
	assert.Equal(t, FallbackImage, ProductImage(&empty))
}
