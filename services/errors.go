package services

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrNicknameTaken      = errors.New("nickname already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSessionNotFound    = errors.New("game session not found")
	ErrGameNotActive      = errors.New("game is not active")
	ErrNotOwner           = errors.New("only the host can start the game")
	ErrCodeGeneration     = errors.New("could not generate a unique game code")
)
