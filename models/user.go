package models

import (
	"time"
)

// User is an account holder. PasswordHash and Salt never leave the server.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Username     string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	PasswordHash []byte    `gorm:"not null" json:"-"`
	Salt         string    `gorm:"size:64;not null" json:"-"`
}
