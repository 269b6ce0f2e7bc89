package main

import (
	"log"
	"log/slog"
	"os"

	"freelance-market-api/internal/database"
	"freelance-market-api/internal/realtime"
	"freelance-market-api/internal/routes"
	"freelance-market-api/internal/stats"
)

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func main() {
	// Init database
	database.InitDB()

	// Wire the realtime layer: registry + counter + broadcaster behind the coordinator
	logger := newLogger()
	registry := realtime.NewConnectionRegistry()
	counter := realtime.NewViewerCounter(logger)
	broadcaster := realtime.NewRoomBroadcaster(registry, logger)
	statsProvider := stats.NewProvider(database.GetDB())
	coordinator := realtime.NewPresenceCoordinator(registry, counter, broadcaster, statsProvider, logger)

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes(coordinator)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8008"
	}
	log.Printf("Server starting on port :%s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/signup")
	log.Println("  POST   /api/login")
	log.Println("  POST   /api/logout")
	log.Println("  GET    /api/projects")
	log.Println("  GET    /api/projects/:id")
	log.Println("  POST   /api/projects/:id/view")
	log.Println("  POST   /api/projects/:id/apply")
	log.Println("  POST   /api/projects/:id/bookmark")
	log.Println("  GET    /api/projects/:id/questions")
	log.Println("  POST   /api/projects/:id/questions")
	log.Println("  GET    /api/freelancers")
	log.Println("  GET    /api/freelancers/:id")
	log.Println("  POST   /api/freelancers/:id/view")
	log.Println("  POST   /api/freelancers/:id/inquiry")
	log.Println("  GET    /api/notices")
	log.Println("  GET    /api/notices/:id")
	log.Println("  GET    /api/categories")
	log.Println("  GET    /api/categories/:id")
	log.Println("  GET    /api/events")
	log.Println("  GET    /api/events/:id")
	log.Println("  GET    /ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
