package routes

import (
	orderControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/order"
	"github.com/Kris1027/e-commerce-beta-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the customer-facing order endpoints.
// Requires a JWT.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/place", orderControllers.PlaceOrderHandler(db))
		orderGroup.GET("/user", orderControllers.GetUserOrdersHandler(db))
		orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
