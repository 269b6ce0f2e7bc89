package handlers

import (
	"errors"
	"net/http"

	"freelance-market-api/internal/database"
	"freelance-market-api/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

/*
*
GetCategories handles GET /api/categories
Returns active categories in display order. ?featured=true limits to
featured categories.
*/
func GetCategories(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	query := database.GetDB().Model(&models.Category{}).Where("is_active = ?", true)
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}

	var categories []models.Category
	if err := query.Order("display_order asc, name asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

/*
*
GetCategoryByID handles GET /api/categories/:id
*/
func GetCategoryByID(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := database.GetDB().First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		return
	}

	c.JSON(http.StatusOK, category)
}
