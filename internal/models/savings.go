package models

// Savings holds a user's single savings balance. Exactly one row exists per
// user; updates are upserts keyed by user_id. This is the one mutable-scalar
// balance in the system, in contrast to the append-only investment ledger.
type Savings struct {
	Base
	UserID uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Amount float64 `gorm:"not null;default:0" json:"amount"`
}

// TableName overrides the default pluralization ("savings" is already plural).
func (Savings) TableName() string {
	return "savings"
}
