package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID uint       `gorm:"primaryKey" json:"id"`
	UserID string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`

	// Price summary, recomputed from the full item list after every mutation.
	ItemsPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"items_price"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_price"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping_price"`
	TaxPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_price"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_price"`
	CouponCode    string          `json:"coupon_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem is a product snapshot; it does not follow later product edits.
type CartItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CartID       uint            `gorm:"index" json:"cart_id"`
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductSlug  string          `json:"product_slug"`
	ProductImage string          `json:"product_image"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Quantity     int             `json:"quantity"`
	AddedAt      time.Time       `json:"added_at"`
}
