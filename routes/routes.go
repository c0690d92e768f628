package routes

import (
	"net/http"

	"quizgame/handlers"
	"quizgame/middleware"
	"quizgame/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	gameHandler *handlers.GameHandler,
	historyHandler *handlers.HistoryHandler,
	authService *services.AuthService,
) {
	authRequired := middleware.AuthMiddleware(authService)

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.GetMe)
			auth.PUT("/profile", authRequired, authHandler.UpdateProfile)
		}

		quiz := api.Group("/quiz")
		{
			quiz.POST("/create", authRequired, quizHandler.CreateQuiz)
			quiz.GET("/user/created", authRequired, quizHandler.GetUserQuizzes)
			quiz.GET("/:code", quizHandler.GetQuizByCode)
		}

		// Join, polling and end stay public: players are anonymous.
		game := api.Group("/game")
		{
			game.POST("/start/:code", authRequired, gameHandler.StartSession)
			game.POST("/join", gameHandler.JoinSession)
			game.GET("/:code/session", gameHandler.GetSession)
			game.PATCH("/end/:code", gameHandler.EndSession)
		}

		history := api.Group("/history")
		{
			history.POST("/add", authRequired, historyHandler.AddHistory)
			history.GET("/me", authRequired, historyHandler.GetMyHistory)
		}

		admin := api.Group("/admin", authRequired, middleware.AdminOnly(authService))
		{
			admin.GET("/users", authHandler.ListUsers)
		}
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Quiz Game API is running", "version": "1.0.0"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
