package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// POST /admin/products/import
// Bulk upsert from a spreadsheet. Columns:
// ID | Name | Slug | Description | Brand | Price | Stock | Image | CategoryIDs
// A row with an unparsable price or missing name is rejected, not silently
// imported with a guessed value.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount := 0, 0
		var rowErrors []string

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			slug := get(2)
			description := get(3)
			brand := get(4)
			priceStr := get(5)
			stockStr := get(6)
			image := get(7)
			categoryIDStr := get(8)

			if name == "" {
				rowErrors = append(rowErrors, rowError(i, "name is required"))
				continue
			}
			price, err := pricing.ParsePrice(priceStr)
			if err != nil {
				rowErrors = append(rowErrors, rowError(i, err.Error()))
				continue
			}
			stock := 0
			if stockStr != "" {
				if stock, err = strconv.Atoi(stockStr); err != nil || stock < 0 {
					rowErrors = append(rowErrors, rowError(i, "invalid stock"))
					continue
				}
			}
			if slug == "" {
				slug = slugify(name)
			}

			var categories []models.Category
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categories = append(categories, models.Category{ID: uint(id)})
				}
			}

			product := models.Product{
				Name:        name,
				Slug:        slug,
				Description: description,
				Brand:       brand,
				Price:       price,
				Stock:       stock,
				Image:       image,
				Categories:  categories,
			}

			if idStr != "" {
				id, err := strconv.Atoi(idStr)
				if err != nil {
					rowErrors = append(rowErrors, rowError(i, "invalid id"))
					continue
				}
				var existing models.Product
				if err := db.Preload("Categories").First(&existing, id).Error; err != nil {
					rowErrors = append(rowErrors, rowError(i, "product id not found"))
					continue
				}
				existing.Name = product.Name
				existing.Slug = product.Slug
				existing.Description = product.Description
				existing.Brand = product.Brand
				existing.Price = product.Price
				existing.Stock = product.Stock
				existing.Image = product.Image
				if err := db.Model(&existing).Association("Categories").Replace(categories); err != nil {
					rowErrors = append(rowErrors, rowError(i, "failed to replace categories"))
					continue
				}
				if err := db.Save(&existing).Error; err != nil {
					rowErrors = append(rowErrors, rowError(i, "failed to update"))
					continue
				}
				updatedCount++
				continue
			}

			if err := db.Create(&product).Error; err != nil {
				rowErrors = append(rowErrors, rowError(i, "failed to create"))
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"error_count":   len(rowErrors),
			"errors":        rowErrors,
		})
	}
}

func rowError(row int, msg string) string {
	return "row " + strconv.Itoa(row+1) + ": " + msg
}
