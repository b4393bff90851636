package models

import "time"

// Bill represents a recurring or upcoming bill with a due date.
type Bill struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description,omitempty"`
}
