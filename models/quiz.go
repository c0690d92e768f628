package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is stored as part of the quiz's JSON document rather than a
// separate table. The wire name of the answer index is camelCase for
// frontend compatibility.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Correct int      `json:"correctAnswer"`
}

type Quiz struct {
	ID        uint                          `json:"id" gorm:"primaryKey"`
	Title     string                        `json:"title" gorm:"size:255;not null"`
	GameCode  string                        `json:"game_code" gorm:"size:20;uniqueIndex;not null"`
	Questions datatypes.JSONSlice[Question] `json:"questions" gorm:"not null"`
	CreatorID uint                          `json:"creator_id" gorm:"index;not null"`
	CreatedAt time.Time                     `json:"created_at"`
	IsActive  bool                          `json:"is_active" gorm:"default:true"`

	// Relationships
	Creator User `json:"-" gorm:"foreignKey:CreatorID"`
}
