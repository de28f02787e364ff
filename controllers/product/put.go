package productcontroller

import (
	"net/http"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Brand       *string `json:"brand"`
	Price       *string `json:"price"`
	Image       *string `json:"image"`
	Stock       *int    `json:"stock"`
	CategoryIDs *[]uint `json:"category_ids"`
}

// PUT /admin/products/:id
// Partial update: only fields present in the body are written.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Slug != nil {
			if *input.Slug == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slug cannot be empty"})
				return
			}
			updates["slug"] = *input.Slug
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Price != nil {
			price, err := pricing.ParsePrice(*input.Price)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates["price"] = price
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
				return
			}
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		if input.CategoryIDs != nil {
			categories, err := loadCategories(db, *input.CategoryIDs)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve categories"})
				return
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
				return
			}
		}

		if err := db.Preload("Categories").First(&product, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
