package main

import (
	"log"

	"quizgame/config"
	"quizgame/handlers"
	"quizgame/middleware"
	"quizgame/models"
	"quizgame/routes"
	"quizgame/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.GameSession{},
		&models.QuizHistory{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenExpiryMinute)
	quizService := services.NewQuizService(db)
	gameService := services.NewGameService(db)
	historyService := services.NewHistoryService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	gameHandler := handlers.NewGameHandler(gameService)
	historyHandler := handlers.NewHistoryHandler(historyService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, gameHandler, historyHandler, authService)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
