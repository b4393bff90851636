package models

import "time"

// GoalStatus represents the lifecycle status of a goal.
// Any status may be set to any other; there are no enforced transitions.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
	GoalStatusCancelled  GoalStatus = "Cancelled"
)

// Goal represents a savings goal with a target amount and date.
type Goal struct {
	Base
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description,omitempty"`
	TargetAmount  float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"not null;default:0" json:"current_amount"`
	TargetDate    time.Time  `gorm:"not null" json:"target_date"`
	Category      string     `gorm:"not null" json:"category"`
	Priority      int        `gorm:"not null;default:3" json:"priority"`
	Status        GoalStatus `gorm:"not null;default:'In Progress'" json:"status"`
}

// Progress returns the completion percentage for the goal. A goal can exceed
// 100% when its current amount overshoots the target; the value is not
// clamped. A zero target yields 0 rather than dividing by zero.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}
