package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex:uk_username;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uk_email;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Nickname  string    `gorm:"type:varchar(50)" json:"nickname"`
	Bio       string    `gorm:"type:varchar(500)" json:"bio"`
	IsBanned  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_banned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
