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
GetNotices handles GET /api/notices
Returns announcements, pinned first. ?main=true limits to pinned notices.
*/
func GetNotices(c *gin.Context) {
	mainOnly := c.Query("main") == "true"

	query := database.GetDB().Model(&models.Notice{})
	if mainOnly {
		query = query.Where("is_pinned = ?", true)
	}

	var notices []models.Notice
	if err := query.Order("is_pinned desc, created_at desc").Find(&notices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notices": notices,
		"count":   len(notices),
	})
}

/*
*
GetNoticeByID handles GET /api/notices/:id
Returns one notice with its attachments.
*/
func GetNoticeByID(c *gin.Context) {
	id := c.Param("id")

	var notice models.Notice
	if err := database.GetDB().First(&notice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notice"})
		return
	}

	var attachments []models.NoticeAttachment
	if err := database.GetDB().Where("notice_id = ?", id).Find(&attachments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attachments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notice":      notice,
		"attachments": attachments,
	})
}
