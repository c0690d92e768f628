package models

import "time"

// QuizHistory is an append-only outcome record. The quiz title is
// denormalized so history survives quizzes that no longer exist.
type QuizHistory struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	QuizID            uint      `json:"quiz_id"`
	QuizTitle         string    `json:"quiz_title" gorm:"size:255"`
	Score             int       `json:"score"`
	TotalQuestions    int       `json:"total_questions"`
	Rank              int       `json:"rank"`
	ParticipantsCount int       `json:"participants_count"`
	PlayedAt          time.Time `json:"played_at"`
}
