package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furqanahmad03/bookstore-api/cart"
	"github.com/furqanahmad03/bookstore-api/checkout"
	"github.com/furqanahmad03/bookstore-api/pricing"
)

type ShippingInput struct {
	FullName   string `json:"fullName" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type PaymentInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// GetShipping returns the saved address so the form can be pre-filled when
// the customer navigates back.
// GET /user/checkout/shipping
func GetShipping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := cart.FromRequest(c)
		c.JSON(http.StatusOK, gin.H{"shipping_address": crt.ShippingAddress})
	}
}

// SaveShipping stores the address in the cart cookie and points the client at
// the payment step.
// POST /user/checkout/shipping
func SaveShipping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		crt := cart.FromRequest(c)
		crt, err := cart.Apply(crt, cart.Action{
			Type: cart.SaveShippingAddress,
			Address: cart.Address{
				FullName:   input.FullName,
				Address:    input.Address,
				City:       input.City,
				PostalCode: input.PostalCode,
				Country:    input.Country,
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
		c.JSON(http.StatusOK, gin.H{"next": checkout.PaymentPath})
	}
}

// GetPayment lists the payment methods; without a saved street address it
// sends the client back to the shipping step.
// GET /user/checkout/payment
func GetPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := cart.FromRequest(c)
		if redirect, ok := checkout.Guard(checkout.StepPayment, crt); !ok {
			c.Redirect(http.StatusTemporaryRedirect, redirect)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"payment_methods": checkout.PaymentMethods,
			"payment_method":  crt.PaymentMethod,
		})
	}
}

// SavePayment stores the chosen method and points the client at place-order.
// POST /user/checkout/payment
func SavePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := cart.FromRequest(c)
		if redirect, ok := checkout.Guard(checkout.StepPayment, crt); !ok {
			c.Redirect(http.StatusTemporaryRedirect, redirect)
			return
		}

		var input PaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
			return
		}
		if !checkout.ValidPaymentMethod(input.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
			return
		}

		crt, err := cart.Apply(crt, cart.Action{Type: cart.SavePaymentMethod, Method: input.PaymentMethod})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		if err := cart.Write(c, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"next": checkout.PlaceOrderPath})
	}
}

// GetPlaceOrder shows the order summary with computed totals. Missing
// checkout data redirects backward; an empty cart gets a notice instead of a
// summary so the place action stays suppressed.
// GET /user/checkout/placeorder
func GetPlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt := cart.FromRequest(c)
		if redirect, ok := checkout.Guard(checkout.StepPlaceOrder, crt); !ok {
			c.Redirect(http.StatusTemporaryRedirect, redirect)
			return
		}

		if len(crt.Items) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Cart is empty", "cart": crt})
			return
		}

		totals := pricing.ComputeTotals(crt.Items)
		c.JSON(http.StatusOK, gin.H{
			"cart":   crt,
			"totals": totals,
		})
	}
}
