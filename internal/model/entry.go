package model

import "time"

// Entry is one stored credential of a user. Ids are auto-assigned and the
// list order returned to clients is insertion order (ascending id).
type Entry struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Service  string `gorm:"not null"`
	Login    string `gorm:"not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
