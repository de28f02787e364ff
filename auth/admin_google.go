package auth

import (
	"net/http"
	"os"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type adminLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// POST /auth/admin/google
// Admin sign-in with an approval gate: a first-time email lands in the
// pending list and gets a 403 until another admin approves it.
func GoogleAdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		picture, _ := payload.Claims["picture"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing an email claim"})
			return
		}

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: false}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account awaiting approval"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account awaiting approval"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"admin":   admin,
			"token":   issueJWT(email, "admin", email, name, picture),
		})
	}
}
