package cartControllers

import (
	"net/http"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity" binding:"required,min=0"` // 0 removes the item
}

type ApplyCouponInput struct {
	Code string `json:"code" binding:"required"`
}

func userIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

func findOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// An absent cart reads as an empty one.
				c.JSON(http.StatusOK, models.Cart{UserID: userID, Items: []models.CartItem{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /user/cart
// Adding an item that is already in the cart sums the quantities, clamped
// to the per-item maximum.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{
				CartID:       cart.CartID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductSlug:  product.Slug,
				ProductImage: product.Image,
				Price:        product.Price,
				Quantity:     pricing.ClampQuantity(input.Quantity),
				AddedAt:      time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			item.Quantity = pricing.ClampQuantity(item.Quantity + input.Quantity)
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		if err := recomputeCartSummary(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /user/cart
// Replaces the quantity outright; quantity 0 removes the item.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		if *input.Quantity == 0 {
			result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				Delete(&models.CartItem{})
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
				return
			}
			if result.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
		} else {
			var item models.CartItem
			if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				First(&item).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			item.Quantity = pricing.ClampQuantity(*input.Quantity)
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		if err := recomputeCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if err := recomputeCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// Clearing a cart that never existed is a no-op.
				c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		cart.CouponCode = ""
		if err := recomputeCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /user/cart/coupon
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var coupon models.Coupon
		if err := db.Where("code = ?", input.Code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if !coupon.Usable(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon is expired or inactive"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		cart.CouponCode = coupon.Code
		if err := db.Model(&cart).Update("coupon_code", coupon.Code).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply coupon"})
			return
		}
		if err := recomputeCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/coupon
func RemoveCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		cart.CouponCode = ""
		if err := db.Model(&cart).Update("coupon_code", "").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove coupon"})
			return
		}
		if err := recomputeCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /admin/carts/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
