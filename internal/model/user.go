package model

import "time"

// User is a vault account. Only the bcrypt hash of the password is stored.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
