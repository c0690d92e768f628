package services

import (
	"testing"
	"time"

	"quizgame/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddHistory_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewHistoryService(db)
	user := createTestUser(t, db, "player")

	entry, err := svc.AddHistory(user.ID, &AddHistoryRequest{
		QuizID:            7,
		QuizTitle:         "Capitals",
		Score:             8,
		TotalQuestions:    10,
		Rank:              2,
		ParticipantsCount: 15,
	})
	require.NoError(t, err)
	require.NotZero(t, entry.ID)

	history, err := svc.GetUserHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	got := history[0]
	assert.Equal(t, uint(7), got.QuizID)
	assert.Equal(t, "Capitals", got.QuizTitle)
	assert.Equal(t, 8, got.Score)
	assert.Equal(t, 10, got.TotalQuestions)
	assert.Equal(t, 2, got.Rank)
	assert.Equal(t, 15, got.ParticipantsCount)
	assert.False(t, got.PlayedAt.IsZero())
}

func TestGetUserHistory_NewestFirstAndScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewHistoryService(db)
	player := createTestUser(t, db, "player")
	other := createTestUser(t, db, "other")

	now := time.Now()
	entries := []models.QuizHistory{
		{UserID: player.ID, QuizTitle: "oldest", PlayedAt: now.Add(-2 * time.Hour)},
		{UserID: player.ID, QuizTitle: "newest", PlayedAt: now},
		{UserID: player.ID, QuizTitle: "middle", PlayedAt: now.Add(-time.Hour)},
		{UserID: other.ID, QuizTitle: "not-yours", PlayedAt: now},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}

	history, err := svc.GetUserHistory(player.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "newest", history[0].QuizTitle)
	assert.Equal(t, "middle", history[1].QuizTitle)
	assert.Equal(t, "oldest", history[2].QuizTitle)
}
