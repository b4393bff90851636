package models

// Investment is one row of the append-only investment ledger. AmountInvested
// is a signed delta: contributions append positive rows, withdrawals append
// negative rows, and existing rows are never rewritten. The displayed total
// is the sum of all deltas for the user, recomputed on every read.
type Investment struct {
	Base
	UserID         uint    `gorm:"not null;index" json:"user_id"`
	Name           string  `gorm:"not null" json:"name"`
	Type           string  `gorm:"not null" json:"type"`
	AmountInvested float64 `gorm:"not null" json:"amount_invested"`
	CurrentValue   float64 `gorm:"not null" json:"current_value"`
}
