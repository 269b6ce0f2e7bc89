package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"freelance-market-api/internal/database"
	"freelance-market-api/internal/models"
	"freelance-market-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

/*
*
GetFreelancers handles GET /api/freelancers
Returns paginated freelancer profiles, optionally filtered by skill.
*/
func GetFreelancers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "desc"))
	skill := c.Query("skill")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	order := "created_at desc"
	if sortParam == "asc" {
		order = "created_at asc"
	}

	db := database.GetDB()
	query := db.Model(&models.Freelancer{})
	if skill != "" {
		query = query.Where("skills LIKE ?", "%"+skill+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count freelancers"})
		return
	}

	var freelancers []models.Freelancer
	result := query.Session(&gorm.Session{}).Order(order).Limit(limit).Offset(offset).Find(&freelancers)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch freelancers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"freelancers": freelancers,
		"count":       len(freelancers),
		"total":       total,
		"page":        page,
		"limit":       limit,
		"sort":        sortParam,
	})
}

/*
*
GetFreelancerByID handles GET /api/freelancers/:id
*/
func GetFreelancerByID(c *gin.Context) {
	id := c.Param("id")

	var freelancer models.Freelancer
	if err := database.GetDB().First(&freelancer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Freelancer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch freelancer"})
		return
	}

	c.JSON(http.StatusOK, freelancer)
}

/*
*
RecordFreelancerView handles POST /api/freelancers/:id/view
Bumps the persisted view counter for a profile page visit.
*/
func RecordFreelancerView(c *gin.Context) {
	id := c.Param("id")

	result := database.GetDB().Model(&models.Freelancer{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Freelancer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "View recorded"})
}

/*
*
InquireFreelancer handles POST /api/freelancers/:id/inquiry
Notifies the freelancer's room that an inquiry was raised.
*/
func InquireFreelancer(rt *realtime.PresenceCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		id := c.Param("id")

		var freelancer models.Freelancer
		if err := database.GetDB().First(&freelancer, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Freelancer not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch freelancer"})
			return
		}

		rt.OnInquiry(realtime.FreelancerRoom(id))

		c.JSON(http.StatusOK, gin.H{"message": "Inquiry sent"})
	}
}
