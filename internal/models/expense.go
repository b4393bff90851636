package models

import "time"

// Expense represents a single expense entry, tagged with a free-text category.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description,omitempty"`
}
