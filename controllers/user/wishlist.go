package userControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var items []models.WishlistItem
		if err := db.Preload("Product").
			Where("user_id = ?", userID).
			Order("added_at desc").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/wishlist
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		// Adding twice is fine; the row already being there is not an error.
		var existing models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wishlist"})
			return
		}

		item := models.WishlistItem{
			UserID:    userID.(string),
			ProductID: input.ProductID,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, uint(productID)).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}
