package checkoutControllers

import (
	"net/http"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentMethodInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func findOrCreateSession(db *gorm.DB, userID string) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := db.Where("user_id = ?", userID).First(&session).Error
	if err == gorm.ErrRecordNotFound {
		session = models.CheckoutSession{UserID: userID}
		if err := db.Create(&session).Error; err != nil {
			return nil, err
		}
		return &session, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GET /user/checkout
func GetCheckoutSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var session models.CheckoutSession
		if err := db.Where("user_id = ?", userID).First(&session).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, models.CheckoutSession{UserID: userID.(string)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// PUT /user/checkout/address
func SaveShippingAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var address models.Address
		if err := c.ShouldBindJSON(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !address.Complete() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "address is incomplete"})
			return
		}

		session, err := findOrCreateSession(db, userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout session"})
			return
		}

		session.ShippingAddress = address
		if err := db.Save(session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipping address"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// PUT /user/checkout/payment
func SavePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session, err := findOrCreateSession(db, userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout session"})
			return
		}

		session.PaymentMethod = input.PaymentMethod
		if err := db.Save(session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment method"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
