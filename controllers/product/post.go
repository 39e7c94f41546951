package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furqanahmad03/bookstore-api/models"
)

type ProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Author       string  `json:"author" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Image        string  `json:"image"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CountInStock *int    `json:"count_in_stock" binding:"required,min=0"`
}

// CreateProduct adds a new book. The slug is derived from the name and must
// be unique across the catalog.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		slug := Slugify(input.Name)
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product name must contain letters or digits"})
			return
		}

		var existing models.Product
		if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product with this name already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing product"})
			return
		}

		product := models.Product{
			Name:         input.Name,
			Slug:         slug,
			Author:       input.Author,
			Description:  input.Description,
			Category:     input.Category,
			Image:        input.Image,
			Price:        input.Price,
			CountInStock: *input.CountInStock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}
