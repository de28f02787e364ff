package auth

import (
	"net/http"
	"os"
	"time"

	cartControllers "github.com/Kris1027/e-commerce-beta-sub000/controllers/cart"
	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type googleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
	GuestID string `json:"guest_id"`
}

// POST /auth/google
// Verifies a Google ID token, finds or creates the user, merges any guest
// cart carried over from the anonymous session and returns an API JWT.
func GoogleUserLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req googleLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		googleUserID := payload.Subject
		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		picture, _ := payload.Claims["picture"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing an email claim"})
			return
		}

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", googleUserID).First(&user).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:       googleUserID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Cart:     models.Cart{UserID: googleUserID},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			merged, err := cartControllers.MergeGuestCartIntoUserCart(db, req.GuestID, user.ID)
			switch {
			case err != nil:
				mergeStatus = "merge-failed"
			case merged:
				mergeStatus = "merged"
			default:
				mergeStatus = "guest-cart-empty"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        issueJWT(email, "user", user.ID, name, picture),
		})
	}
}

// issueJWT generates the API token handed back after sign-in.
func issueJWT(email, role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}
