package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // order placed, awaiting payment confirmation
	OrderStatusProcessing OrderStatus = "processing" // payment confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // handed to the carrier
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before delivery
)

// ParseOrderStatus rejects anything outside the known set. There is no
// permissive write-the-string-anyway branch.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid order status %q", s)
	}
}

// Terminal statuses accept no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// CanTransition allows one forward step along
// pending -> processing -> shipped -> delivered, cancellation from any
// non-terminal status, and re-applying the current status (a no-op).
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	return statusRank[to] == statusRank[from]+1
}

// statusEffects lists the paid/delivered side effects of entering a status.
// Nil pointers mean "leave the field alone"; timestamps are stamped only
// when still unset, so re-applying a status never moves them.
type statusEffects struct {
	isPaid           *bool
	isDelivered      *bool
	stampPaidAt      bool
	stampDeliveredAt bool
}

var (
	flagTrue  = true
	flagFalse = false
)

var statusEffectsTable = map[OrderStatus]statusEffects{
	OrderStatusPending:    {},
	OrderStatusProcessing: {isPaid: &flagTrue, stampPaidAt: true},
	OrderStatusShipped:    {isPaid: &flagTrue, isDelivered: &flagFalse},
	OrderStatusDelivered:  {isPaid: &flagTrue, isDelivered: &flagTrue, stampDeliveredAt: true},
	OrderStatusCancelled:  {isDelivered: &flagFalse},
}

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex" json:"order_ref"`
	UserID   string `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	// Frozen at placement time.
	ShippingAddress Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string  `json:"payment_method"`
	CouponCode      string  `json:"coupon_code,omitempty"`

	ItemsPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"items_price"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_price"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping_price"`
	TaxPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_price"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_price"`

	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	IsPaid      bool        `json:"is_paid"`
	PaidAt      *time.Time  `json:"paid_at,omitempty"`
	IsDelivered bool        `json:"is_delivered"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a placement-time snapshot; later product edits do not touch it.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderID      uint            `gorm:"index" json:"order_id"`
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductSlug  string          `json:"product_slug"`
	ProductImage string          `json:"product_image"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Quantity     int             `json:"quantity"`
}

// ApplyStatus moves the order to target and applies the side-effect table.
// Idempotent: re-applying the current status changes nothing beyond the
// status column itself.
func (o *Order) ApplyStatus(target OrderStatus, now time.Time) {
	eff := statusEffectsTable[target]
	o.Status = target
	if eff.isPaid != nil {
		o.IsPaid = *eff.isPaid
	}
	if eff.isDelivered != nil {
		o.IsDelivered = *eff.isDelivered
	}
	if eff.stampPaidAt && o.PaidAt == nil {
		t := now
		o.PaidAt = &t
	}
	if eff.stampDeliveredAt && o.DeliveredAt == nil {
		t := now
		o.DeliveredAt = &t
	}
}
