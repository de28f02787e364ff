package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func guestIDFromQuery(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestIDFromQuery(c)
		if !ok {
			return
		}

		var cart models.GuestCart
		if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, models.GuestCart{GuestID: guestID, Items: []models.GuestCartItem{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /guest/cart
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestIDFromQuery(c)
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

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
				return
			}
			cart = models.GuestCart{GuestID: guestID}
			if err := db.Create(&cart).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest cart"})
				return
			}
		}

		var item models.GuestCartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.GuestCartItem{
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
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			item.Quantity = pricing.ClampQuantity(item.Quantity + input.Quantity)
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
				return
			}
		}

		if err := recomputeGuestCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute guest cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /guest/cart
func UpdateGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestIDFromQuery(c)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		if *input.Quantity == 0 {
			result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				Delete(&models.GuestCartItem{})
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
				return
			}
			if result.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
		} else {
			var item models.GuestCartItem
			if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				First(&item).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			item.Quantity = pricing.ClampQuantity(*input.Quantity)
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
				return
			}
		}

		if err := recomputeGuestCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute guest cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /guest/cart/:product_id
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestIDFromQuery(c)
		if !ok {
			return
		}

		productIDUint, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, uint(productIDUint)).
			Delete(&models.GuestCartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if err := recomputeGuestCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute guest cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := guestIDFromQuery(c)
		if !ok {
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		if err := recomputeGuestCartSummary(db, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
