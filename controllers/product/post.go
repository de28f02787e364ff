package productcontroller

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Price       string `json:"price" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Stock       int    `json:"stock"`
	CategoryIDs []uint `json:"category_ids"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns "Blue Ceramic Mug" into "blue-ceramic-mug".
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func loadCategories(db *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		price, err := pricing.ParsePrice(input.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = slugify(input.Name)
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot derive a slug from the name"})
			return
		}

		categories, err := loadCategories(db, input.CategoryIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve categories"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Slug:        slug,
			Description: input.Description,
			Brand:       input.Brand,
			Price:       price,
			Image:       input.Image,
			Stock:       input.Stock,
			Categories:  categories,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
