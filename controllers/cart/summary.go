package cartControllers

import (
	"log"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// cartLines converts stored items to pricing lines, skipping any line that
// fails validation. The skip is logged, not fatal: one bad row must not
// take the whole cart down.
func cartLines(items []models.CartItem) []pricing.Line {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		l := pricing.Line{Price: it.Price, Quantity: it.Quantity}
		if !l.Valid() {
			log.Printf("cart %d: skipping invalid line (product %d, price %s, qty %d)",
				it.CartID, it.ProductID, it.Price, it.Quantity)
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func guestCartLines(items []models.GuestCartItem) []pricing.Line {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		l := pricing.Line{Price: it.Price, Quantity: it.Quantity}
		if !l.Valid() {
			log.Printf("guest cart %d: skipping invalid line (product %d, price %s, qty %d)",
				it.CartID, it.ProductID, it.Price, it.Quantity)
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// recomputeCartSummary reloads the item list and rewrites the cart's price
// columns from scratch. Called after every cart mutation; never updates
// incrementally. A coupon that has gone missing, inactive or expired since
// it was applied is dropped from the cart here.
func recomputeCartSummary(db *gorm.DB, cart *models.Cart) error {
	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return err
	}
	cart.Items = items

	subtotal := pricing.Subtotal(cartLines(items))

	discount := decimal.Zero
	if cart.CouponCode != "" {
		var coupon models.Coupon
		err := db.Where("code = ?", cart.CouponCode).First(&coupon).Error
		switch {
		case err == gorm.ErrRecordNotFound || (err == nil && !coupon.Usable(time.Now())):
			log.Printf("cart %d: dropping unusable coupon %q", cart.CartID, cart.CouponCode)
			cart.CouponCode = ""
		case err != nil:
			return err
		default:
			discount = coupon.Discount(subtotal)
		}
	}

	s := pricing.Breakdown(subtotal, discount)
	cart.ItemsPrice = s.ItemsPrice
	cart.DiscountPrice = s.DiscountPrice
	cart.ShippingPrice = s.ShippingPrice
	cart.TaxPrice = s.TaxPrice
	cart.TotalPrice = s.TotalPrice

	return db.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Updates(map[string]interface{}{
		"items_price":    cart.ItemsPrice,
		"discount_price": cart.DiscountPrice,
		"shipping_price": cart.ShippingPrice,
		"tax_price":      cart.TaxPrice,
		"total_price":    cart.TotalPrice,
		"coupon_code":    cart.CouponCode,
	}).Error
}

func recomputeGuestCartSummary(db *gorm.DB, cart *models.GuestCart) error {
	var items []models.GuestCartItem
	if err := db.Where("cart_id = ?", cart.CartID).Find(&items).Error; err != nil {
		return err
	}
	cart.Items = items

	s := pricing.Breakdown(pricing.Subtotal(guestCartLines(items)), decimal.Zero)
	cart.ItemsPrice = s.ItemsPrice
	cart.ShippingPrice = s.ShippingPrice
	cart.TaxPrice = s.TaxPrice
	cart.TotalPrice = s.TotalPrice

	return db.Model(&models.GuestCart{}).Where("cart_id = ?", cart.CartID).Updates(map[string]interface{}{
		"items_price":    cart.ItemsPrice,
		"shipping_price": cart.ShippingPrice,
		"tax_price":      cart.TaxPrice,
		"total_price":    cart.TotalPrice,
	}).Error
}
