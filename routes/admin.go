package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/furqanahmad03/bookstore-api/controllers/order"
	productControllers "github.com/furqanahmad03/bookstore-api/controllers/product"
	userControllers "github.com/furqanahmad03/bookstore-api/controllers/user"
	"github.com/furqanahmad03/bookstore-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a token with
// the admin claim.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.AdminOnly)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productControllers.GetProducts(db))
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
			productAdmin.GET("/:id", productControllers.GetProductByID(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		// ─────────── Orders & Users ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PUT("/orders/:id/deliver", orderControllers.MarkDeliveredHandler(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}

	// Live order feed for the dashboard
	ws := r.Group("/orders/ws")
	ws.Use(middleware.ValidateToken, middleware.AdminOnly)
	ws.GET("", orderControllers.OrderWebSocketHandler)
}
