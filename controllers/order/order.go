package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Kris1027/e-commerce-beta-sub000/models"
	"github.com/Kris1027/e-commerce-beta-sub000/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoCheckoutSession = errors.New("shipping address and payment method must be set before placing an order")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// generateOrderRef builds a unique human-scannable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// whereOrder filters by numeric id or order ref. The id column is an
// integer, so the id branch only joins the query when the key parses as
// one; a ref-shaped key queries order_ref alone.
func whereOrder(db *gorm.DB, key string) *gorm.DB {
	if id, err := strconv.Atoi(key); err == nil {
		return db.Where("id = ? OR order_ref = ?", id, key)
	}
	return db.Where("order_ref = ?", key)
}

// PlaceOrder runs the whole placement workflow in one transaction: lock and
// decrement product stock, snapshot the cart into an order with a frozen
// price breakdown, then clear the cart and the checkout session. Any
// failure rolls everything back.
func PlaceOrder(db *gorm.DB, userID string) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var session models.CheckoutSession
	if err := db.Where("user_id = ?", userID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNoCheckoutSession
		}
		return nil, err
	}
	if !session.ShippingAddress.Complete() || session.PaymentMethod == "" {
		return nil, ErrNoCheckoutSession
	}

	discount := decimal.Zero
	if cart.CouponCode != "" {
		var coupon models.Coupon
		if err := db.Where("code = ?", cart.CouponCode).First(&coupon).Error; err == nil &&
			coupon.Usable(time.Now()) {
			discount = coupon.Discount(pricing.Subtotal(cartLines(cart.Items)))
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		var lines []pricing.Line

		for _, item := range cart.Items {
			// Same skip policy as the cart recompute: an invalid row is
			// excluded from the summary the customer saw, so it must not
			// enter the frozen breakdown either.
			line := pricing.Line{Price: item.Price, Quantity: item.Quantity}
			if !line.Valid() {
				continue
			}

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for product %s", ErrInsufficientStock, item.ProductName)
			}
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			lines = append(lines, line)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductSlug:  item.ProductSlug,
				ProductImage: item.ProductImage,
				Price:        item.Price,
				Quantity:     item.Quantity,
			})
		}

		if len(orderItems) == 0 {
			return ErrEmptyCart
		}

		s := pricing.Breakdown(pricing.Subtotal(lines), discount)

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			Items:           orderItems,
			ShippingAddress: session.ShippingAddress,
			PaymentMethod:   session.PaymentMethod,
			CouponCode:      cart.CouponCode,
			ItemsPrice:      s.ItemsPrice,
			DiscountPrice:   s.DiscountPrice,
			ShippingPrice:   s.ShippingPrice,
			TaxPrice:        s.TaxPrice,
			TotalPrice:      s.TotalPrice,
			Status:          models.OrderStatusPending,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear the cart and reset its summary.
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Updates(map[string]interface{}{
			"items_price":    decimal.Zero,
			"discount_price": decimal.Zero,
			"shipping_price": decimal.Zero,
			"tax_price":      decimal.Zero,
			"total_price":    decimal.Zero,
			"coupon_code":    "",
		}).Error; err != nil {
			return err
		}

		// Clear the checkout session.
		return tx.Where("user_id = ?", userID).Delete(&models.CheckoutSession{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func cartLines(items []models.CartItem) []pricing.Line {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		l := pricing.Line{Price: it.Price, Quantity: it.Quantity}
		if !l.Valid() {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		order, err := PlaceOrder(db, userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastOrderEvent("order_placed", *order)
		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully",
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
			"order":     order,
		})
	}
}

// GET /orders/user
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — numeric id or order_ref both work.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := whereOrder(db.Preload("Items"), id).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Owners and admins only. Admin routes skip the JWT middleware so
		// user_id is absent there.
		if userIDVal, exists := c.Get("user_id"); exists {
			if userID, _ := userIDVal.(string); userID != "" && userID != order.UserID {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		query := db.Preload("User").Preload("Items").Order("created_at DESC")

		if statusStr := c.Query("status"); statusStr != "" {
			status, err := models.ParseOrderStatus(statusStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", status)
		}

		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var order models.Order
		if err := whereOrder(db, orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
