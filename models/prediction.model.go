package models

import (
	"gorm.io/gorm"
)

// Prediction is one scored MRI analysis. Rows are append-only: they are
// written once when an analysis completes and never updated or deleted.
type Prediction struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null" json:"userId"`
	User        User    `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Date        string  `gorm:"not null" json:"date"` // "YYYY-MM-DD HH:MM:SS", fixed width so lexicographic order is chronological
	Probability float64 `json:"probability"`
	ResultText  string  `json:"resultText"`
	ImagePath   string  `gorm:"default:''" json:"imagePath"`
}
