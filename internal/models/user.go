package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Name             string     `json:"name"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	// Preferences surfaced on the settings page
	DarkMode      bool   `gorm:"default:false" json:"dark_mode"`
	Currency      string `gorm:"not null;default:'USD'" json:"currency"`
	Notifications bool   `gorm:"default:true" json:"notifications"`

	Incomes     []Income     `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses    []Expense    `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Bills       []Bill       `gorm:"foreignKey:UserID" json:"bills,omitempty"`
	Assets      []Asset      `gorm:"foreignKey:UserID" json:"assets,omitempty"`
	Goals       []Goal       `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Investments []Investment `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}
