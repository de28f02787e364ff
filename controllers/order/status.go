package orderControllers

import (
	"net/http"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:orderID/status
// Walks the order through the status machine: one forward step at a time,
// cancellation from any non-terminal status. Entering a status applies its
// paid/delivered side effects; already-set timestamps are never moved.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		target, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := whereOrder(db, orderID).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !models.CanTransition(order.Status, target) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "cannot transition from " + string(order.Status) + " to " + string(target),
			})
			return
		}

		order.ApplyStatus(target, time.Now())
		if err := db.Model(&order).
			Select("status", "is_paid", "paid_at", "is_delivered", "delivered_at").
			Updates(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		broadcastOrderEvent("status_updated", order)
		c.JSON(http.StatusOK, order)
	}
}
