package services

import (
	"fmt"
	"strings"
	"testing"

	"quizgame/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.GameSession{},
		&models.QuizHistory{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, nickname string) *models.User {
	t.Helper()

	user := models.User{
		Email:          nickname + "@example.com",
		Nickname:       nickname,
		Name:           "Test " + nickname,
		HashedPassword: "x",
		Role:           models.RolePlayer,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestQuiz(t *testing.T, db *gorm.DB, creatorID uint) *models.Quiz {
	t.Helper()

	svc := NewQuizService(db)
	quiz, err := svc.CreateQuiz(creatorID, &CreateQuizRequest{
		Title: "Capitals",
		Questions: []models.Question{
			{Text: "Capital of France?", Options: []string{"Paris", "Lyon"}, Correct: 0},
		},
	})
	require.NoError(t, err)
	return quiz
}
