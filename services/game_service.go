package services

import (
	"errors"
	"time"

	"quizgame/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

type JoinGameRequest struct {
	GameCode   string `json:"game_code" binding:"required"`
	PlayerName string `json:"player_name" binding:"required"`
}

// lockedSession selects the session row FOR UPDATE so concurrent joins and
// lifecycle changes serialize on the row instead of losing writes. sqlite
// (used in tests) is single-writer and rejects the clause, so it is only
// applied on postgres.
func lockedSession(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// StartSession creates the session for a quiz or reactivates a finished one.
// The player list survives reactivation. Starting a quiz also deactivates
// every other quiz: only one quiz is live for joining at any time.
func (s *GameService) StartSession(userID uint, code string) (*models.GameSession, error) {
	var session models.GameSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.Where("game_code = ?", code).First(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuizNotFound
			}
			return err
		}

		if quiz.CreatorID != userID {
			return ErrNotOwner
		}

		err := lockedSession(tx).Where("game_code = ?", code).First(&session).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			session = models.GameSession{
				GameCode:  code,
				QuizID:    quiz.ID,
				HostID:    quiz.CreatorID,
				IsActive:  true,
				Players:   datatypes.JSONSlice[string]{},
				Status:    models.SessionStatusWaiting,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			session.IsActive = true
			session.Status = models.SessionStatusWaiting
			session.CreatedAt = time.Now()
			if err := tx.Save(&session).Error; err != nil {
				return err
			}
		}

		// Only this quiz stays active.
		if err := tx.Model(&models.Quiz{}).Where("id <> ?", quiz.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&quiz).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// JoinSession appends a player name to an active session. Joining twice with
// the same name is a no-op, and every join resets the status to waiting --
// the lobby is idle until the host advances it.
func (s *GameService) JoinSession(code, playerName string) (*models.GameSession, error) {
	var session models.GameSession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockedSession(tx).Where("game_code = ?", code).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotActive
			}
			return err
		}

		if !session.IsActive {
			return ErrGameNotActive
		}

		found := false
		for _, name := range session.Players {
			if name == playerName {
				found = true
				break
			}
		}
		if !found {
			session.Players = append(session.Players, playerName)
		}

		session.Status = models.SessionStatusWaiting
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetOrCreateSession returns the session for a code, creating an inactive
// waiting-room row if the quiz exists but has never been started. The create
// is deliberate: clients poll this endpoint before the host starts the game.
func (s *GameService) GetOrCreateSession(code string) (*models.GameSession, error) {
	var session models.GameSession
	err := s.db.Where("game_code = ?", code).First(&session).Error
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var quiz models.Quiz
	if err := s.db.Where("game_code = ?", code).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	session = models.GameSession{
		GameCode:  code,
		QuizID:    quiz.ID,
		HostID:    quiz.CreatorID,
		IsActive:  false,
		Players:   datatypes.JSONSlice[string]{},
		Status:    models.SessionStatusWaiting,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// EndSession finishes a session and deactivates its quiz. Ending an already
// finished session succeeds silently.
func (s *GameService) EndSession(code string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var session models.GameSession
		if err := lockedSession(tx).Where("game_code = ?", code).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		session.IsActive = false
		session.Status = models.SessionStatusFinished
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		// The quiz may have been deleted out-of-band; that is not an error.
		err := tx.Model(&models.Quiz{}).Where("game_code = ?", code).
			Update("is_active", false).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}
