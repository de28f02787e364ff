package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"created_at":  "created_at",
	"price":       "price",
	"name":        "name",
	"rating":      "rating",
	"num_reviews": "num_reviews",
}

// GET /products
// Supports search, category, price-range filters and whitelisted sorting.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categorySlug := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy, ok := sortColumns[c.DefaultQuery("sort_by", "created_at")]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}
		sortOrder := c.DefaultQuery("order", "desc")
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Product{}).Preload("Categories")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?",
				likePattern, likePattern, likePattern)
		}

		if minPriceStr != "" {
			mp, err := pricing.ParsePrice(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := pricing.ParsePrice(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		if categorySlug != "" {
			query = query.
				Joins("JOIN product_categories pc ON pc.product_id = products.id").
				Joins("JOIN categories cat ON cat.id = pc.category_id").
				Where("cat.slug = ?", categorySlug)
		}

		// Paging: page is 1-based, limit capped at 100.
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
		if limit < 1 || limit > 100 {
			limit = 24
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.
			Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"page":     page,
			"limit":    limit,
			"total":    total,
		})
	}
}
