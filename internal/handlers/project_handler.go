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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplyRequest represents the request payload for applying to a project
type ApplyRequest struct {
	Message string `json:"message"`
}

// QuestionRequest represents the request payload for asking a project question
type QuestionRequest struct {
	Content string `json:"content" binding:"required"`
}

/*
*
GetProjects handles GET /api/projects
Returns paginated project listings, optionally filtered by category/status.
*/
func GetProjects(c *gin.Context) {
	// Query params: page (default 1), limit (default 10), sort (asc|desc on created_at, default desc)
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "desc"))
	category := c.Query("category")
	status := c.Query("status")

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
	query := db.Model(&models.Project{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count projects",
		})
		return
	}

	var projects []models.Project
	result := query.Session(&gorm.Session{}).Order(order).Limit(limit).Offset(offset).Find(&projects)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch projects",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
		"total":    total,
		"page":     page,
		"limit":    limit,
		"sort":     sortParam,
	})
}

/*
*
GetProjectByID handles GET /api/projects/:id
Returns one project listing.
*/
func GetProjectByID(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.GetDB().First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

/*
*
RecordProjectView handles POST /api/projects/:id/view
Bumps the persisted view counter for a project detail page visit.
*/
func RecordProjectView(c *gin.Context) {
	id := c.Param("id")

	result := database.GetDB().Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "View recorded"})
}

/*
*
ApplyToProject handles POST /api/projects/:id/apply
Creates an application, bumps the counter and notifies the project room.
*/
func ApplyToProject(rt *realtime.PresenceCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		id := c.Param("id")

		var req ApplyRequest
		_ = c.ShouldBindJSON(&req) // message is optional

		var project models.Project
		if err := database.GetDB().First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
			return
		}

		// One application per user per project
		var existing int64
		database.GetDB().Model(&models.ProjectApplication{}).
			Where("project_id = ? AND user_id = ?", id, userID).
			Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Already applied to this project"})
			return
		}

		application := models.ProjectApplication{
			ID:        uuid.NewString(),
			ProjectID: id,
			UserID:    userID,
			Message:   req.Message,
		}

		db := database.GetDB()
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&application).Error; err != nil {
				return err
			}
			return tx.Model(&models.Project{}).
				Where("id = ?", id).
				UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply to project"})
			return
		}

		// Notify viewers of the project room with the fresh count
		rt.OnApplication(c.Request.Context(), id)

		c.JSON(http.StatusCreated, application)
	}
}

/*
*
ToggleProjectBookmark handles POST /api/projects/:id/bookmark
Adds or removes the caller's bookmark and notifies the project room.
*/
func ToggleProjectBookmark(rt *realtime.PresenceCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		id := c.Param("id")

		var project models.Project
		if err := database.GetDB().First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
			return
		}

		db := database.GetDB()

		var bookmark models.ProjectBookmark
		err := db.First(&bookmark, "project_id = ? AND user_id = ?", id, userID).Error

		bookmarked := false
		switch {
		case err == nil:
			// Already bookmarked: remove it
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Delete(&bookmark).Error; err != nil {
					return err
				}
				return tx.Model(&models.Project{}).
					Where("id = ? AND bookmark_count > 0", id).
					UpdateColumn("bookmark_count", gorm.Expr("bookmark_count - 1")).Error
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			bookmarked = true
			newBookmark := models.ProjectBookmark{
				ID:        uuid.NewString(),
				ProjectID: id,
				UserID:    userID,
			}
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&newBookmark).Error; err != nil {
					return err
				}
				return tx.Model(&models.Project{}).
					Where("id = ?", id).
					UpdateColumn("bookmark_count", gorm.Expr("bookmark_count + 1")).Error
			})
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle bookmark"})
			return
		}

		rt.OnBookmark(c.Request.Context(), id)

		c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
	}
}

/*
*
GetProjectQuestions handles GET /api/projects/:id/questions
*/
func GetProjectQuestions(c *gin.Context) {
	id := c.Param("id")

	var questions []models.ProjectQuestion
	if err := database.GetDB().Where("project_id = ?", id).Order("created_at desc").Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"count":     len(questions),
	})
}

/*
*
CreateProjectQuestion handles POST /api/projects/:id/questions
Stores the question and notifies the project room of the inquiry.
*/
func CreateProjectQuestion(rt *realtime.PresenceCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
			return
		}

		id := c.Param("id")

		var req QuestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var project models.Project
		if err := database.GetDB().First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
			return
		}

		question := models.ProjectQuestion{
			ID:        uuid.NewString(),
			ProjectID: id,
			UserID:    userID,
			Content:   req.Content,
		}
		if err := database.GetDB().Create(&question).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
			return
		}

		rt.OnInquiry(realtime.ProjectRoom(id))

		c.JSON(http.StatusCreated, question)
	}
}
