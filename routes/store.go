package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/furqanahmad03/bookstore-api/controllers/cart"
	productControllers "github.com/furqanahmad03/bookstore-api/controllers/product"
)

// SetupStoreRoutes registers catalog browsing and the cookie cart. These work
// without a token: the cart lives in the browser until checkout.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))            // GET /products?category=
		products.GET("/:slug", productControllers.GetProductBySlug(db)) // GET /products/:slug
		products.GET("/:slug/stock", productControllers.GetProductStock(db))
	}

	r.GET("/categories", productControllers.GetCategories(db))

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:slug", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}
}
