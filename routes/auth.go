package routes

import (
	"github.com/Kris1027/e-commerce-beta-sub000/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the sign-in endpoints. All public.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestUser(db))                // anonymous session
		authGroup.POST("/google", auth.GoogleUserLoginHandler(db))        // user sign-in + guest cart merge
		authGroup.POST("/admin/google", auth.GoogleAdminLoginHandler(db)) // admin sign-in (approval-gated)
	}
}
