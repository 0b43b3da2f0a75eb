package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Age      uint   `json:"age"`
	Gender   string `gorm:"default:''" json:"gender"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
}
