package routes

import (
	adminController "github.com/Kris1027/e-commerce-beta-sub000/controllers/admin"
	cartControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/cart"
	couponControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/coupon"
	orderControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/order"
	productcontroller "github.com/Kris1027/e-commerce-beta-sub000/controllers/product"
	userControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/user"
	"github.com/Kris1027/e-commerce-beta-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office surface. Every endpoint is
// gated by the X-API-KEY header.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productcontroller.CreateProduct(db))
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		adminGroup.POST("/products/import", productcontroller.ImportProductsFromExcel(db))
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(db))

		// ──────────────── Categories ────────────────
		adminGroup.POST("/categories", productcontroller.CreateCategory(db))
		adminGroup.PUT("/categories/:id", productcontroller.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", productcontroller.DeleteCategory(db))

		// ──────────────── Coupons ────────────────
		adminGroup.GET("/coupons", couponControllers.GetCoupons(db))
		adminGroup.POST("/coupons", couponControllers.CreateCoupon(db))
		adminGroup.PUT("/coupons/:code", couponControllers.UpdateCoupon(db))
		adminGroup.DELETE("/coupons/:code", couponControllers.DeleteCoupon(db))

		// ──────────────── Banners ────────────────
		adminGroup.GET("/banners", adminController.GetAllBanners(db))
		adminGroup.POST("/banners", adminController.CreateBanner(db))
		adminGroup.PUT("/banners/:id", adminController.UpdateBanner(db))
		adminGroup.DELETE("/banners/:id", adminController.DeleteBanner(db))

		// ──────────────── Customers ────────────────
		adminGroup.GET("/customers", userControllers.GetAllUsers(db))
		adminGroup.GET("/customers/:user_id/cart", cartControllers.GetAdminUserCart(db))

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		adminGroup.DELETE("/orders/:orderID", orderControllers.DeleteOrderHandler(db))
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		// ──────────────── Analytics ────────────────
		adminGroup.GET("/analytics", adminController.GetAnalytics(db))

		// ──────────────── Admin approval ────────────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/admins/pending", adminController.ListPendingAdmins(db))
		adminGroup.POST("/admins/approve", adminController.ApproveAdmin(db))
		adminGroup.POST("/admins/reject", adminController.RejectAdmin(db))
	}
}
