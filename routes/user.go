package routes

import (
	cartControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/cart"
	checkoutControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/checkout"
	userControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/user"
	"github.com/Kris1027/e-commerce-beta-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a JWT.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
			cartGroup.POST("/coupon", cartControllers.ApplyCoupon(db))
			cartGroup.DELETE("/coupon", cartControllers.RemoveCoupon(db))
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.GET("/", checkoutControllers.GetCheckoutSession(db))
			checkoutGroup.PUT("/address", checkoutControllers.SaveShippingAddress(db))
			checkoutGroup.PUT("/payment", checkoutControllers.SavePaymentMethod(db))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", userControllers.GetWishlist(db))
			wishlistGroup.POST("/", userControllers.AddToWishlist(db))
			wishlistGroup.DELETE("/:product_id", userControllers.RemoveFromWishlist(db))
		}
	}
}
