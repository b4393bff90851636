package models

import "time"

// Asset represents an owned asset (property, vehicle, valuables) at a point-in-time value.
type Asset struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Value       float64   `gorm:"not null" json:"value"`
	Date        time.Time `gorm:"not null" json:"date"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description,omitempty"`
}
