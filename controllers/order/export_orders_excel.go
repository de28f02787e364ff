package orderControllers

import (
	"net/http"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderRef", "UserID", "Status", "IsPaid", "PaidAt", "IsDelivered", "DeliveredAt",
			"ItemsPrice", "DiscountPrice", "ShippingPrice", "TaxPrice", "TotalPrice",
			"PaymentMethod", "CouponCode", "ItemCount", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		const timeLayout = "2006-01-02 15:04:05"
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.IsPaid)
			if o.PaidAt != nil {
				row.AddCell().SetValue(o.PaidAt.Format(timeLayout))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(o.IsDelivered)
			if o.DeliveredAt != nil {
				row.AddCell().SetValue(o.DeliveredAt.Format(timeLayout))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(o.ItemsPrice.StringFixed(2))
			row.AddCell().SetValue(o.DiscountPrice.StringFixed(2))
			row.AddCell().SetValue(o.ShippingPrice.StringFixed(2))
			row.AddCell().SetValue(o.TaxPrice.StringFixed(2))
			row.AddCell().SetValue(o.TotalPrice.StringFixed(2))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.CouponCode)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.CreatedAt.Format(timeLayout))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
