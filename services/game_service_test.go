package services

import (
	"testing"

	"quizgame/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession_CreatesWaitingSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	session, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)

	assert.Equal(t, quiz.GameCode, session.GameCode)
	assert.Equal(t, quiz.ID, session.QuizID)
	assert.Equal(t, host.ID, session.HostID)
	assert.True(t, session.IsActive)
	assert.Equal(t, models.SessionStatusWaiting, session.Status)
	assert.Empty(t, session.Players)
}

func TestStartSession_NotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	stranger := createTestUser(t, db, "stranger")
	quiz := createTestQuiz(t, db, host.ID)

	_, err := svc.StartSession(stranger.ID, quiz.GameCode)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestStartSession_UnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")

	_, err := svc.StartSession(host.ID, "ZZZZZZ")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestStartSession_ReactivationPreservesPlayers(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	first, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)

	_, err = svc.JoinSession(quiz.GameCode, "ada")
	require.NoError(t, err)
	_, err = svc.JoinSession(quiz.GameCode, "bob")
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(quiz.GameCode))

	second, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)

	// Same row, back in the lobby, roster intact.
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsActive)
	assert.Equal(t, models.SessionStatusWaiting, second.Status)
	assert.Equal(t, []string{"ada", "bob"}, []string(second.Players))
}

func TestStartSession_DeactivatesOtherQuizzes(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quizA := createTestQuiz(t, db, host.ID)
	quizB := createTestQuiz(t, db, host.ID)

	_, err := svc.StartSession(host.ID, quizA.GameCode)
	require.NoError(t, err)
	_, err = svc.StartSession(host.ID, quizB.GameCode)
	require.NoError(t, err)

	var a, b models.Quiz
	require.NoError(t, db.First(&a, quizA.ID).Error)
	require.NoError(t, db.First(&b, quizB.ID).Error)
	assert.False(t, a.IsActive)
	assert.True(t, b.IsActive)
}

func TestJoinSession_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	_, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)

	_, err = svc.JoinSession(quiz.GameCode, "ada")
	require.NoError(t, err)
	session, err := svc.JoinSession(quiz.GameCode, "ada")
	require.NoError(t, err)

	assert.Equal(t, []string{"ada"}, []string(session.Players))

	// Names are case-sensitive; "Ada" is a different player.
	session, err = svc.JoinSession(quiz.GameCode, "Ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada", "Ada"}, []string(session.Players))
}

func TestJoinSession_RequiresActiveSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	// Never started: no session row at all.
	_, err := svc.JoinSession(quiz.GameCode, "ada")
	assert.ErrorIs(t, err, ErrGameNotActive)

	_, err = svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)
	require.NoError(t, svc.EndSession(quiz.GameCode))

	// Ended: row exists but inactive.
	_, err = svc.JoinSession(quiz.GameCode, "ada")
	assert.ErrorIs(t, err, ErrGameNotActive)
}

func TestJoinSession_ResetsStatusToWaiting(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	_, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.GameSession{}).
		Where("game_code = ?", quiz.GameCode).
		Update("status", models.SessionStatusPlaying).Error)

	session, err := svc.JoinSession(quiz.GameCode, "latecomer")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusWaiting, session.Status)
}

func TestGetOrCreateSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	_, err := svc.GetOrCreateSession("ZZZZZZ")
	assert.ErrorIs(t, err, ErrQuizNotFound)

	// A read before the host starts the game lazily creates an inactive row.
	created, err := svc.GetOrCreateSession(quiz.GameCode)
	require.NoError(t, err)
	assert.False(t, created.IsActive)
	assert.Equal(t, models.SessionStatusWaiting, created.Status)
	assert.Empty(t, created.Players)
	assert.Equal(t, host.ID, created.HostID)

	again, err := svc.GetOrCreateSession(quiz.GameCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestGetOrCreateSession_DoesNotTouchActiveSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	started, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)

	got, err := svc.GetOrCreateSession(quiz.GameCode)
	require.NoError(t, err)
	assert.Equal(t, started.ID, got.ID)
	assert.True(t, got.IsActive)
}

func TestEndSession_IdempotentAndDeactivatesQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	host := createTestUser(t, db, "host")
	quiz := createTestQuiz(t, db, host.ID)

	_, err := svc.StartSession(host.ID, quiz.GameCode)
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(quiz.GameCode))
	require.NoError(t, svc.EndSession(quiz.GameCode))

	var session models.GameSession
	require.NoError(t, db.Where("game_code = ?", quiz.GameCode).First(&session).Error)
	assert.False(t, session.IsActive)
	assert.Equal(t, models.SessionStatusFinished, session.Status)

	var stored models.Quiz
	require.NoError(t, db.First(&stored, quiz.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestEndSession_UnknownCode(t *testing.T) {
	svc := NewGameService(newTestDB(t))
	assert.ErrorIs(t, svc.EndSession("ZZZZZZ"), ErrSessionNotFound)
}
