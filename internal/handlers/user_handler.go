package handlers

import (
	"net/http"
	"time"

	"freelance-market-api/internal/database"
	"freelance-market-api/internal/models"

	"github.com/gin-gonic/gin"
)

// MemberResponse is the public view of a marketplace account; the password
// hash never leaves this layer.
type MemberResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}

/*
*
GetAllUsers handles GET /api/users
Returns the marketplace member directory for authenticated callers.
*/
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := database.GetDB().Order("created_at asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	members := make([]MemberResponse, 0, len(users))
	for _, u := range users {
		members = append(members, MemberResponse{
			ID:       u.ID,
			Username: u.Username,
			JoinedAt: u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"users": members,
		"count": len(members),
	})
}
