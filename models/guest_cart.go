package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuestCart mirrors Cart for anonymous sessions. It is merged into the
// user cart at sign-in and deleted afterwards. Coupons are user-only, so
// there is no discount column here.
type GuestCart struct {
	CartID  uint            `gorm:"primaryKey" json:"id"`
	GuestID string          `gorm:"uniqueIndex" json:"guest_id"` // one cart per guest
	Items   []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`

	ItemsPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"items_price"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping_price"`
	TaxPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_price"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GuestCartItem struct {
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
