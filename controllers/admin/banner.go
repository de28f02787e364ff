package adminController

import (
	"net/http"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BannerInput struct {
	Title    string `json:"title"`
	Image    string `json:"image" binding:"required,url"`
	Link     string `json:"link"`
	Position int    `json:"position"`
	Active   *bool  `json:"active"`
}

// GET /banners — public, storefront homepage slides.
func GetActiveBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Where("active = ?", true).Order("position asc").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// GET /admin/banners
func GetAllBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("position asc").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// POST /admin/banners
func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		banner := models.Banner{
			Title:    input.Title,
			Image:    input.Image,
			Link:     input.Link,
			Position: input.Position,
			Active:   true,
		}
		if input.Active != nil {
			banner.Active = *input.Active
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
			return
		}
		c.JSON(http.StatusCreated, banner)
	}
}

// PUT /admin/banners/:id
func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}

		var input BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		banner.Title = input.Title
		banner.Image = input.Image
		banner.Link = input.Link
		banner.Position = input.Position
		if input.Active != nil {
			banner.Active = *input.Active
		}
		if err := db.Save(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
			return
		}
		c.JSON(http.StatusOK, banner)
	}
}

// DELETE /admin/banners/:id
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Banner{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
