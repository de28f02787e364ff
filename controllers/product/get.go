package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products/:slug — numeric ids also resolve, for the admin console.
// The id column is an integer, so the id branch only joins the query when
// the param actually parses as one.
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		query := db.Preload("Categories").Where("slug = ?", slug)
		if id, err := strconv.Atoi(slug); err == nil {
			query = db.Preload("Categories").Where("slug = ? OR id = ?", slug, id)
		}

		var product models.Product
		if err := query.First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
