package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Catalog browsing and the anonymous cookie cart
	SetupStoreRoutes(r, db)

	// User routes (JWT-protected): profile, checkout, orders
	SetupUserRoutes(r, db)

	// Admin routes (JWT + admin claim)
	SetupAdminRoutes(r, db)
}
