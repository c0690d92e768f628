package handlers

import (
	"errors"
	"net/http"

	"quizgame/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func (h *GameHandler) StartSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	session, err := h.gameService.StartSession(userID.(uint), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start game"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *GameHandler) JoinSession(c *gin.Context) {
	var req services.JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.gameService.JoinSession(req.GameCode, req.PlayerName)
	if err != nil {
		if errors.Is(err, services.ErrGameNotActive) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This game is not active. Wait for the host to start it."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join game"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *GameHandler) GetSession(c *gin.Context) {
	session, err := h.gameService.GetOrCreateSession(c.Param("code"))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *GameHandler) EndSession(c *gin.Context) {
	code := c.Param("code")
	if err := h.gameService.EndSession(code); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Game session ended successfully",
		"game_code": code,
	})
}
