package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furqanahmad03/bookstore-api/cart"
	"github.com/furqanahmad03/bookstore-api/models"
	"github.com/furqanahmad03/bookstore-api/pricing"
)

type CartItemInput struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := cart.FromRequest(c)

		totalQuantity := 0
		var subtotal float64
		for _, it := range crt.Items {
			totalQuantity += it.Quantity
			subtotal += it.Price * float64(it.Quantity)
		}

		c.JSON(http.StatusOK, gin.H{
			"cart":           crt,
			"total_quantity": totalQuantity,
			"subtotal":       pricing.Round2(subtotal),
		})
	}
}

// UpdateCartItem sets the quantity for a book, adding the line if absent. The
// stock check always hits the database: the stock number already in the
// cookie may be stale.
// POST /cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Where("slug = ?", input.Slug).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		if err := cart.ValidateQuantity(input.Quantity, product.CountInStock); err != nil {
			if errors.Is(err, cart.ErrInsufficientStock) {
				c.JSON(http.StatusConflict, gin.H{"error": "Sorry, product is out of stock"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		crt := cart.FromRequest(c)
		crt, err := cart.Apply(crt, cart.Action{
			Type: cart.AddItem,
			Item: cart.LineItem{
				Slug:          product.Slug,
				Name:          product.Name,
				Image:         product.Image,
				Price:         product.Price,
				Quantity:      input.Quantity,
				StockQuantity: product.CountInStock,
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		if err := cart.Write(c, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": crt})
	}
}

// DELETE /cart/:slug
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
			return
		}

		crt := cart.FromRequest(c)
		crt, err := cart.Apply(crt, cart.Action{Type: cart.RemoveItem, Slug: slug})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		if err := cart.Write(c, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": crt})
	}
}

// ClearCart removes every line item. The saved shipping address and payment
// method stay in the cookie.
// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := cart.FromRequest(c)
		crt, err := cart.Apply(crt, cart.Action{Type: cart.ClearItems})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		if err := cart.Write(c, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "cart": crt})
	}
}
