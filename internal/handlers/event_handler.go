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
GetEvents handles GET /api/events
Returns promotional events, optionally filtered by status.
*/
func GetEvents(c *gin.Context) {
	status := c.Query("status")

	query := database.GetDB().Model(&models.Event{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var events []models.Event
	if err := query.Order("start_date desc").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

/*
*
GetEventByID handles GET /api/events/:id
*/
func GetEventByID(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := database.GetDB().First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, event)
}
