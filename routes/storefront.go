package routes

import (
	adminController "github.com/Kris1027/e-commerce-beta-sub000/controllers/admin"
	cartControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/cart"
	productcontroller "github.com/Kris1027/e-commerce-beta-sub000/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public browse surface and the guest
// cart. Guests identify themselves by the guest_id issued at /auth/guest.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:slug", productcontroller.GetProductBySlug(db))
	r.GET("/categories", productcontroller.GetCategories(db))
	r.GET("/categories/:slug", productcontroller.GetCategoryWithProducts(db))
	r.GET("/banners", adminController.GetActiveBanners(db))

	// ──────────────── Guest cart ────────────────
	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("/", cartControllers.GetGuestCart(db))
		guestCart.POST("/", cartControllers.AddGuestCartItem(db))
		guestCart.PUT("/", cartControllers.UpdateGuestCartItem(db))
		guestCart.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(db))
		guestCart.DELETE("/", cartControllers.ClearGuestCart(db))
	}
}
