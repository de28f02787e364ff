package adminController

import (
	"log"
	"net/http"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/admins
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin

		if err := db.Find(&admins).Error; err != nil {
			log.Println("failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}

// GET /admin/admins/pending
func ListPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Admin
		if err := db.Where("approved = ?", false).Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending admins"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

type adminEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /admin/admins/approve
func ApproveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		if err := db.Model(&admin).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin approved"})
	}
}

// POST /admin/admins/reject
func RejectAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if err := db.Where("email = ?", req.Email).Delete(&models.Admin{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Admin rejected"})
	}
}
