// Package pricing holds the pure money math for carts and orders: subtotal,
// shipping, tax and total. No database or HTTP imports belong here.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxItemQuantity caps the quantity of a single cart line. Adds and updates
// clamp to it rather than erroring.
const MaxItemQuantity = 10

var (
	// FreeShippingThreshold is compared against the discounted subtotal.
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingRate      = decimal.NewFromInt(10)
	TaxRate               = decimal.NewFromFloat(0.10)
)

// Line is one cart or order line as the calculator sees it.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

// Valid reports whether the line may enter a subtotal.
func (l Line) Valid() bool {
	return l.Quantity > 0 && !l.Price.IsNegative()
}

// Summary is the price breakdown stored on carts and frozen onto orders.
// All fields are rounded to 2 decimal places, half away from zero.
type Summary struct {
	ItemsPrice    decimal.Decimal
	DiscountPrice decimal.Decimal
	ShippingPrice decimal.Decimal
	TaxPrice      decimal.Decimal
	TotalPrice    decimal.Decimal
}

// ParsePrice parses a non-negative money string with at most 2 decimal
// places. Callers decide what to do with the error: the cart recompute
// skips the line, the xlsx import rejects the row.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid price %q: negative", s)
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("invalid price %q: more than 2 decimal places", s)
	}
	return d, nil
}

// ClampQuantity bounds a requested quantity to 1..MaxItemQuantity.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	if q > MaxItemQuantity {
		return MaxItemQuantity
	}
	return q
}

// Subtotal sums price*quantity over the valid lines. Invalid lines are the
// caller's problem; filter them first (see cart recompute).
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// Breakdown turns a subtotal and an already-computed discount into the full
// summary. The discount is clamped to [0, subtotal] so the discounted
// subtotal never goes negative; shipping is free at or above the threshold,
// otherwise the flat rate; tax applies to the discounted subtotal.
func Breakdown(subtotal, discount decimal.Decimal) Summary {
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	discount = discount.Round(2)

	discounted := subtotal.Sub(discount)

	shipping := FlatShippingRate
	if discounted.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := discounted.Mul(TaxRate).Round(2)

	return Summary{
		ItemsPrice:    subtotal.Round(2),
		DiscountPrice: discount,
		ShippingPrice: shipping.Round(2),
		TaxPrice:      tax,
		TotalPrice:    discounted.Add(shipping).Add(tax).Round(2),
	}
}
