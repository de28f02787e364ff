package cartControllers

import (
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"gorm.io/gorm"
)

// MergeGuestCartIntoUserCart folds a guest cart into the user's cart at
// sign-in: quantities of shared products are summed (clamped to the
// per-item maximum), everything else is appended, and the guest cart is
// deleted. Returns false when there was nothing to merge.
func MergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var guestCart models.GuestCart
	if err := tx.Preload("Items").Where("guest_id = ?", guestID).First(&guestCart).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	var userCart models.Cart
	err := tx.Where("user_id = ?", userID).First(&userCart).Error
	if err == gorm.ErrRecordNotFound {
		userCart = models.Cart{UserID: userID}
		if err := tx.Create(&userCart).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	} else if err != nil {
		tx.Rollback()
		return false, err
	}

	merged := false
	for _, guestItem := range guestCart.Items {
		var userItem models.CartItem
		lookupErr := tx.Where("cart_id = ? AND product_id = ?", userCart.CartID, guestItem.ProductID).
			First(&userItem).Error

		switch {
		case lookupErr == nil:
			userItem.Quantity = pricing.ClampQuantity(userItem.Quantity + guestItem.Quantity)
			userItem.AddedAt = time.Now()
			if err := tx.Save(&userItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		case lookupErr == gorm.ErrRecordNotFound:
			newItem := models.CartItem{
				CartID:       userCart.CartID,
				ProductID:    guestItem.ProductID,
				ProductName:  guestItem.ProductName,
				ProductSlug:  guestItem.ProductSlug,
				ProductImage: guestItem.ProductImage,
				Price:        guestItem.Price,
				Quantity:     pricing.ClampQuantity(guestItem.Quantity),
				AddedAt:      time.Now(),
			}
			if err := tx.Create(&newItem).Error; err != nil {
				tx.Rollback()
				return false, err
			}
		default:
			tx.Rollback()
			return false, lookupErr
		}
		merged = true
	}

	if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Delete(&guestCart).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := recomputeCartSummary(tx, &userCart); err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return false, err
	}
	return merged, nil
}
