package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SessionStatusWaiting  = "waiting"
	SessionStatusPlaying  = "playing"
	SessionStatusFinished = "finished"
)

// GameSession is the joinable instance of a quiz, keyed by the quiz's game
// code. Players are anonymous display names, unique per session.
type GameSession struct {
	ID        uint                        `json:"id" gorm:"primaryKey"`
	GameCode  string                      `json:"game_code" gorm:"size:20;uniqueIndex;not null"`
	QuizID    uint                        `json:"quiz_id" gorm:"not null"`
	HostID    uint                        `json:"host_id"`
	IsActive  bool                        `json:"is_active" gorm:"default:false"`
	Players   datatypes.JSONSlice[string] `json:"players"`
	Status    string                      `json:"status" gorm:"size:20;default:'waiting'"` // waiting, playing, finished
	CreatedAt time.Time                   `json:"created_at"`

	// Relationships
	Quiz Quiz `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
}
