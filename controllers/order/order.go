package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/furqanahmad03/bookstore-api/cart"
	"github.com/furqanahmad03/bookstore-api/models"
	"github.com/furqanahmad03/bookstore-api/pricing"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNoPaymentMethod    = errors.New("payment method is required")
	ErrNoShippingAddress  = errors.New("shipping address is required")
	ErrProductUnavailable = errors.New("product is no longer available")
)

// generateOrderRef builds the human-facing order reference,
// e.g. "20250908130500-2b1f...".
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder turns the cookie cart into a persisted order. Totals are
// recomputed server-side from the cart lines; stock is locked, re-checked and
// deducted in one transaction so two checkouts cannot both take the last
// copy. The caller clears the cart only after this returns successfully.
func PlaceOrder(db *gorm.DB, userID uint, crt cart.Cart) (*models.Order, error) {
	if len(crt.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if crt.ShippingAddress.Address == "" {
		return nil, ErrNoShippingAddress
	}
	if crt.PaymentMethod == "" {
		return nil, ErrNoPaymentMethod
	}

	totals := pricing.ComputeTotals(crt.Items)

	order := models.Order{
		OrderRef: generateOrderRef(),
		UserID:   userID,
		ShippingAddress: models.ShippingAddress{
			FullName:   crt.ShippingAddress.FullName,
			Address:    crt.ShippingAddress.Address,
			City:       crt.ShippingAddress.City,
			PostalCode: crt.ShippingAddress.PostalCode,
			Country:    crt.ShippingAddress.Country,
		},
		PaymentMethod: crt.PaymentMethod,
		ItemsPrice:    totals.ItemsPrice,
		TaxPrice:      totals.TaxPrice,
		ShippingPrice: totals.ShippingPrice,
		TotalPrice:    totals.TotalPrice,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range crt.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("slug = ?", item.Slug).First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductUnavailable, item.Slug)
				}
				return err
			}

			if product.CountInStock < item.Quantity {
				return fmt.Errorf("%w: %s", cart.ErrInsufficientStock, product.Name)
			}

			product.CountInStock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				Slug:     item.Slug,
				Name:     item.Name,
				Image:    item.Image,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// placeOrder is swapped out in tests; production always goes through
// PlaceOrder.
var placeOrder = PlaceOrder

// PlaceOrderHandler places an order from the cookie cart. On success the cart
// items are cleared in the rewritten cookie; the shipping address and payment
// method stay so a returning customer can reorder directly. On failure the
// cookie is left untouched and the customer may retry.
// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		crt := cart.FromRequest(c)

		order, err := placeOrder(db, userID, crt)
		if err != nil {
			switch {
			case errors.Is(err, cart.ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, ErrProductUnavailable),
				errors.Is(err, ErrEmptyCart),
				errors.Is(err, ErrNoPaymentMethod),
				errors.Is(err, ErrNoShippingAddress):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		cleared, err := cart.Apply(crt, cart.Action{Type: cart.ClearItems})
		if err != nil {
			log.Printf("❌ Failed to clear cart after order %s: %v", order.OrderRef, err)
		} else if err := cart.Write(c, cleared); err != nil {
			log.Printf("❌ Failed to rewrite cart cookie after order %s: %v", order.OrderRef, err)
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
			"order":     order,
		})
	}
}

// GetUserOrdersHandler returns the caller's order history, newest first.
// GET /orders/mine
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GetOrderByIDHandler returns a single order by numeric ID or order_ref. Only
// the owner or an admin may see it.
// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		userIDVal, _ := c.Get("user_id")
		isAdminVal, _ := c.Get("is_admin")
		isAdmin, _ := isAdminVal.(bool)
		if order.UserID != userIDVal.(uint) && !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// GetAllOrdersHandler lists every order for the admin dashboard.
// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// MarkDeliveredHandler flags an order as delivered.
// PUT /admin/orders/:id/deliver
func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
			return
		}

		now := time.Now()
		result := db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
			"is_delivered": true,
			"delivered_at": &now,
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order marked as delivered"})
	}
}
