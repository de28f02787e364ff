package adminController

import (
	"net/http"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type statusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type topProduct struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// GET /admin/analytics
// Sales summary for the dashboard: totals, revenue, orders by status and
// the best-selling products. Cancelled orders are excluded from revenue.
func GetAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalProducts, totalOrders int64
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		var revenue decimal.NullDecimal
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("SUM(total_price)").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
			return
		}
		totalRevenue := decimal.Zero
		if revenue.Valid {
			totalRevenue = revenue.Decimal
		}

		var byStatus []statusCount
		if err := db.Model(&models.Order{}).
			Select("status, COUNT(*) as count").
			Group("status").
			Scan(&byStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to group orders"})
			return
		}

		var topProducts []topProduct
		if err := db.Model(&models.OrderItem{}).
			Select("product_id, product_name, SUM(quantity) as quantity").
			Group("product_id, product_name").
			Order("quantity DESC").
			Limit(5).
			Scan(&topProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_users":      totalUsers,
			"total_products":   totalProducts,
			"total_orders":     totalOrders,
			"total_revenue":    totalRevenue.StringFixed(2),
			"orders_by_status": byStatus,
			"top_products":     topProducts,
		})
	}
}
