package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/furqanahmad03/bookstore-api/controllers/checkout"
	orderControllers "github.com/furqanahmad03/bookstore-api/controllers/order"
	userControllers "github.com/furqanahmad03/bookstore-api/controllers/user"
	"github.com/furqanahmad03/bookstore-api/middleware"
)

// SetupUserRoutes registers all JWT-protected customer endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))

		// ──────────────── Checkout Steps ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.GET("/shipping", checkoutControllers.GetShipping(db))
			checkoutGroup.POST("/shipping", checkoutControllers.SaveShipping(db))
			checkoutGroup.GET("/payment", checkoutControllers.GetPayment(db))
			checkoutGroup.POST("/payment", checkoutControllers.SavePayment(db))
			checkoutGroup.GET("/placeorder", checkoutControllers.GetPlaceOrder(db))
		}
	}

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("/mine", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
	}
}
