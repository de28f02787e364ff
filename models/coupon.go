package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"      // Value is an amount off the subtotal
	DiscountPercentage DiscountType = "percentage" // Value is a percentage of the subtotal
)

type Coupon struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Code        string              `gorm:"uniqueIndex;not null" json:"code"`
	Type        DiscountType        `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value       decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"value"`
	MaxDiscount decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"max_discount"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	Active      bool                `gorm:"default:true" json:"active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Usable reports whether the coupon may be applied at the given time.
func (c Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// Discount returns the amount off a subtotal: fixed coupons give
// min(value, subtotal), percentage coupons subtotal*value/100. Clamped to
// the cap when one is set and to the subtotal, so the discounted subtotal
// never goes negative. Always >= 0, rounded to 2 decimal places.
func (c Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.Type {
	case DiscountFixed:
		d = c.Value
	case DiscountPercentage:
		d = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
	if c.MaxDiscount.Valid && d.GreaterThan(c.MaxDiscount.Decimal) {
		d = c.MaxDiscount.Decimal
	}
	if d.GreaterThan(subtotal) {
		d = subtotal
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}
