package routes

import (
	"freelance-market-api/internal/handlers"
	"freelance-market-api/internal/middleware"
	"freelance-market-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(rt *realtime.PresenceCoordinator) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204) // This depends on the implementation of the frontend
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Freelance Market API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/signup", handlers.Signup)
		api.POST("/login", handlers.Login)

		// Marketplace browsing is public
		api.GET("/projects", handlers.GetProjects)
		api.GET("/projects/:id", handlers.GetProjectByID)
		api.POST("/projects/:id/view", handlers.RecordProjectView)
		api.GET("/projects/:id/questions", handlers.GetProjectQuestions)
		api.GET("/freelancers", handlers.GetFreelancers)
		api.GET("/freelancers/:id", handlers.GetFreelancerByID)
		api.POST("/freelancers/:id/view", handlers.RecordFreelancerView)
		api.GET("/notices", handlers.GetNotices)
		api.GET("/notices/:id", handlers.GetNoticeByID)
		api.GET("/categories", handlers.GetCategories)
		api.GET("/categories/:id", handlers.GetCategoryByID)
		api.GET("/events", handlers.GetEvents)
		api.GET("/events/:id", handlers.GetEventByID)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		protectedRoutes.POST("/logout", handlers.Logout)

		// Project write path; each of these feeds the realtime layer
		protectedRoutes.POST("/projects/:id/apply", handlers.ApplyToProject(rt))
		protectedRoutes.POST("/projects/:id/bookmark", handlers.ToggleProjectBookmark(rt))
		protectedRoutes.POST("/projects/:id/questions", handlers.CreateProjectQuestion(rt))
		protectedRoutes.POST("/freelancers/:id/inquiry", handlers.InquireFreelancer(rt))

		// Users endpoint
		protectedRoutes.GET("/users", handlers.GetAllUsers)
	}

	// Realtime endpoint (token accepted via query param for browser clients)
	ginRouter.GET("/ws", middleware.JWTAuthMiddleware(), handlers.WebSocketHandler(rt))

	return ginRouter
}
