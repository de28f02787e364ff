package models

import "time"

// CheckoutSession holds the shipping address and payment method a user
// picked during checkout. It is cleared when the order is placed.
type CheckoutSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"uniqueIndex" json:"user_id"`
	ShippingAddress Address   `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string    `json:"payment_method"`
	UpdatedAt       time.Time `json:"updated_at"`
}
