package models

import "time"

// Income represents a single income entry (salary, freelance, etc.)
type Income struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
	Source      string    `gorm:"not null" json:"source"`
	Description string    `json:"description,omitempty"`
}
