package services

import (
	"crypto/rand"
	"errors"

	"quizgame/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	gameCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	gameCodeLength   = 6

	// With 36^6 possible codes a collision is vanishingly rare; the cap
	// turns a broken random source into a hard error instead of a spin.
	maxCodeAttempts = 32
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title     string            `json:"title" binding:"required"`
	Questions []models.Question `json:"questions" binding:"required,min=1"`
}

func (s *QuizService) CreateQuiz(userID uint, req *CreateQuizRequest) (*models.Quiz, error) {
	code, err := s.generateGameCode()
	if err != nil {
		return nil, err
	}

	questions := make([]models.Question, len(req.Questions))
	copy(questions, req.Questions)
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}

	quiz := models.Quiz{
		Title:     req.Title,
		GameCode:  code,
		Questions: questions,
		CreatorID: userID,
		IsActive:  true,
	}

	// The unique index on game_code backstops the check-then-insert race
	// between concurrent creators.
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (s *QuizService) GetQuizByCode(code string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Where("game_code = ?", code).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) GetUserQuizzes(userID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("creator_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizService) generateGameCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		buf := make([]byte, gameCodeLength)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		code := make([]byte, gameCodeLength)
		for i, b := range buf {
			code[i] = gameCodeAlphabet[int(b)%len(gameCodeAlphabet)]
		}

		var existing models.Quiz
		err := s.db.Where("game_code = ?", string(code)).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return string(code), nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrCodeGeneration
}
