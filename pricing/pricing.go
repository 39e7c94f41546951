// Package pricing derives order totals from cart contents. The rounding order
// is fixed: the items subtotal is rounded first, tax is computed from the
// rounded subtotal, and the final sum is rounded again. Changing that order
// shifts some totals by a cent.
package pricing

import (
	"math"

	"github.com/furqanahmad03/bookstore-api/cart"
)

const (
	// FreeShippingThreshold and FlatShippingFee are business constants, not
	// runtime configuration. Shipping is free strictly above the threshold.
	FreeShippingThreshold = 200.0
	FlatShippingFee       = 15.0
	TaxRate               = 0.15
)

// epsilon counteracts binary float representation error so that currency
// values ending in .005 round up instead of truncating.
const epsilon = 2.220446049250313e-16

// Round2 rounds to two decimal places, half-up for currency-scale values.
func Round2(x float64) float64 {
	return math.Round(x*100+epsilon) / 100
}

// Totals carries the four derived prices of an order. They are never stored
// apart from the cart snapshot that produced them.
type Totals struct {
	ItemsPrice    float64 `json:"items_price"`
	TaxPrice      float64 `json:"tax_price"`
	ShippingPrice float64 `json:"shipping_price"`
	TotalPrice    float64 `json:"total_price"`
}

// ComputeTotals prices a set of cart lines.
func ComputeTotals(items []cart.LineItem) Totals {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	itemsPrice := Round2(sum)

	shippingPrice := FlatShippingFee
	if itemsPrice > FreeShippingThreshold {
		shippingPrice = 0
	}

	taxPrice := Round2(itemsPrice * TaxRate)

	return Totals{
		ItemsPrice:    itemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: shippingPrice,
		TotalPrice:    Round2(itemsPrice + shippingPrice + taxPrice),
	}
}
