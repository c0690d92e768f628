package models

import "time"

const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Nickname       string    `json:"nickname" gorm:"size:100;uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Role           string    `json:"role" gorm:"size:20;default:'player'"` // admin or player
	ProfilePicture *string   `json:"profile_picture" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
}
