package services

import (
	"time"

	"quizgame/models"

	"gorm.io/gorm"
)

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

type AddHistoryRequest struct {
	QuizID            uint   `json:"quiz_id" binding:"required"`
	QuizTitle         string `json:"quiz_title" binding:"required"`
	Score             int    `json:"score"`
	TotalQuestions    int    `json:"total_questions"`
	Rank              int    `json:"rank"`
	ParticipantsCount int    `json:"participants_count"`
}

// AddHistory appends an outcome record. The reported score, rank and
// participant count are caller-supplied and stored as-is.
func (s *HistoryService) AddHistory(userID uint, req *AddHistoryRequest) (*models.QuizHistory, error) {
	entry := models.QuizHistory{
		UserID:            userID,
		QuizID:            req.QuizID,
		QuizTitle:         req.QuizTitle,
		Score:             req.Score,
		TotalQuestions:    req.TotalQuestions,
		Rank:              req.Rank,
		ParticipantsCount: req.ParticipantsCount,
		PlayedAt:          time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *HistoryService) GetUserHistory(userID uint) ([]models.QuizHistory, error) {
	var history []models.QuizHistory
	err := s.db.Where("user_id = ?", userID).
		Order("played_at DESC").
		Find(&history).Error
	return history, err
}
