package couponControllers

import (
	"net/http"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CouponInput struct {
	Code        string     `json:"code" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Value       string     `json:"value" binding:"required"`
	MaxDiscount string     `json:"max_discount"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Active      *bool      `json:"active"`
}

func couponFromInput(input CouponInput) (models.Coupon, string) {
	var coupon models.Coupon

	switch models.DiscountType(input.Type) {
	case models.DiscountFixed:
		coupon.Type = models.DiscountFixed
	case models.DiscountPercentage:
		coupon.Type = models.DiscountPercentage
	default:
		return coupon, "type must be fixed or percentage"
	}

	value, err := pricing.ParsePrice(input.Value)
	if err != nil {
		return coupon, "invalid value: " + err.Error()
	}
	if coupon.Type == models.DiscountPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return coupon, "percentage value cannot exceed 100"
	}

	coupon.Code = input.Code
	coupon.Value = value
	coupon.ExpiresAt = input.ExpiresAt
	coupon.Active = true
	if input.Active != nil {
		coupon.Active = *input.Active
	}
	if input.MaxDiscount != "" {
		maxDiscount, err := pricing.ParsePrice(input.MaxDiscount)
		if err != nil {
			return coupon, "invalid max_discount: " + err.Error()
		}
		coupon.MaxDiscount = decimal.NewNullDecimal(maxDiscount)
	}
	return coupon, ""
}

// GET /admin/coupons
func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at desc").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon, msg := couponFromInput(input)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// PUT /admin/coupons/:code
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		var existing models.Coupon
		if err := db.Where("code = ?", code).First(&existing).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon, msg := couponFromInput(input)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		coupon.ID = existing.ID
		coupon.CreatedAt = existing.CreatedAt
		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /admin/coupons/:code
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		result := db.Where("code = ?", code).Delete(&models.Coupon{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
