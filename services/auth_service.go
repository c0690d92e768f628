package services

import (
	"errors"
	"strconv"
	"time"

	"quizgame/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt only looks at the first 72 bytes of the input.
const maxPasswordBytes = 72

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenExpiryMinutes int) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(tokenExpiryMinutes) * time.Minute,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Nickname       string `json:"nickname"`
	ProfilePicture string `json:"profile_picture"`
}

func (s *AuthService) HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		password = password[:maxPasswordBytes]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// treated as a mismatch, never an error.
func (s *AuthService) CheckPassword(password, hash string) bool {
	if len(password) > maxPasswordBytes {
		password = password[:maxPasswordBytes]
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken verifies the signature and expiry and returns the subject user
// ID. Any failure collapses into ErrInvalidCredentials.
func (s *AuthService) ParseToken(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidCredentials
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrInvalidCredentials
	}
	return uint(userID), nil
}

func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	// Check email and nickname uniqueness; the unique indexes are the
	// backstop under concurrent registrations.
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.db.Where("nickname = ?", req.Nickname).First(&existing).Error; err == nil {
		return nil, ErrNicknameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RolePlayer
	}

	user := models.User{
		Email:          req.Email,
		Nickname:       req.Nickname,
		Name:           req.Name,
		HashedPassword: hash,
		Role:           role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update; empty fields are left untouched.
func (s *AuthService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Nickname != "" && req.Nickname != user.Nickname {
		var existing models.User
		if err := s.db.Where("nickname = ? AND id <> ?", req.Nickname, userID).First(&existing).Error; err == nil {
			return nil, ErrNicknameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Nickname = req.Nickname
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = &req.ProfilePicture
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error
	return users, err
}
