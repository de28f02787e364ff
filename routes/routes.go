package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public storefront routes (catalog, banners, guest cart)
	SetupStorefrontRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
