package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/furqanahmad03/bookstore-api/cart"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"two decimals untouched", 19.20, 19.20},
		{"truncates below half cent", 123.4543, 123.45},
		{"rounds up above half cent", 123.4567, 123.46},
		{"exact half cent rounds up", 0.125, 0.13},
		{"whole number untouched", 15, 15},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}

func TestRound2CleansFloatNoise(t *testing.T) {
	// 0.1+0.2 is the classic 0.30000000000000004.
	assert.Equal(t, 0.3, Round2(0.1+0.2))
}

func TestComputeTotalsExample(t *testing.T) {
	items := []cart.LineItem{
		{Slug: "to-kill-a-mockingbird", Price: 49, Quantity: 2},
		{Slug: "the-alchemist-deluxe", Price: 30, Quantity: 1},
	}

	totals := ComputeTotals(items)

	assert.Equal(t, 128.00, totals.ItemsPrice)
	assert.Equal(t, 15.0, totals.ShippingPrice) // 128 is under the threshold
	assert.Equal(t, 19.20, totals.TaxPrice)     // round2(128 * 0.15)
	assert.Equal(t, 162.20, totals.TotalPrice)
}

func TestComputeTotalsFreeShippingBoundary(t *testing.T) {
	// Exactly 200 still pays shipping; free shipping needs strictly more.
	at := ComputeTotals([]cart.LineItem{{Slug: "a", Price: 200, Quantity: 1}})
	assert.Equal(t, 15.0, at.ShippingPrice)

	over := ComputeTotals([]cart.LineItem{{Slug: "a", Price: 200.01, Quantity: 1}})
	assert.Equal(t, 0.0, over.ShippingPrice)
}

func TestComputeTotalsTaxUsesRoundedItemsPrice(t *testing.T) {
	// The raw sum carries float noise; tax must be derived from the rounded
	// subtotal, not the raw accumulator.
	items := []cart.LineItem{
		{Slug: "a", Price: 0.1, Quantity: 1},
		{Slug: "b", Price: 0.2, Quantity: 1},
	}

	totals := ComputeTotals(items)

	assert.Equal(t, 0.3, totals.ItemsPrice)
	assert.Equal(t, Round2(totals.ItemsPrice*TaxRate), totals.TaxPrice)
	assert.Equal(t, Round2(totals.ItemsPrice+totals.ShippingPrice+totals.TaxPrice), totals.TotalPrice)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Equal(t, 0.0, totals.ItemsPrice)
	assert.Equal(t, 15.0, totals.ShippingPrice)
	assert.Equal(t, 0.0, totals.TaxPrice)
	assert.Equal(t, 15.0, totals.TotalPrice)
}

func TestComputeTotalsQuantityMultiplies(t *testing.T) {
	totals := ComputeTotals([]cart.LineItem{{Slug: "a", Price: 59, Quantity: 4}})

	assert.Equal(t, 236.00, totals.ItemsPrice)
	assert.Equal(t, 0.0, totals.ShippingPrice) // over the free-shipping threshold
	assert.Equal(t, 35.40, totals.TaxPrice)
	assert.Equal(t, 271.40, totals.TotalPrice)
}
