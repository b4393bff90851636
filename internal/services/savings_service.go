package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// savingsService manages the per-user savings balance: the one mutable
// scalar in the system. Exactly one row exists per user.
type savingsService struct {
	db *gorm.DB
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB) SavingsServicer {
	return &savingsService{db: db}
}

// GetSavings returns the user's savings balance, 0 when no row exists yet.
func (s *savingsService) GetSavings(userID uint) (float64, error) {
	var savings models.Savings
	if err := s.db.Where("user_id = ?", userID).First(&savings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return savings.Amount, nil
}

// SetSavings sets the user's savings balance to an absolute amount,
// creating the row if it does not exist yet.
func (s *savingsService) SetSavings(userID uint, amount float64) (*models.Savings, error) {
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}

	savings, err := s.ensureRow(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(savings).Update("amount", amount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return savings, nil
}

// AdjustSavings applies a signed delta to the user's balance with a single
// conditional UPDATE, so two concurrent adjustments cannot lose each other's
// write. A delta that would push the balance negative is rejected.
func (s *savingsService) AdjustSavings(userID uint, delta float64) (*models.Savings, error) {
	if _, err := s.ensureRow(userID); err != nil {
		return nil, err
	}

	res := s.db.Model(&models.Savings{}).
		Where("user_id = ? AND amount + ? >= 0", userID, delta).
		Update("amount", gorm.Expr("amount + ?", delta))
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrInsufficientSavings
	}

	var savings models.Savings
	if err := s.db.Where("user_id = ?", userID).First(&savings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &savings, nil
}

// ensureRow fetches the user's savings row, creating a zero-amount row on
// first touch.
func (s *savingsService) ensureRow(userID uint) (*models.Savings, error) {
	savings := &models.Savings{UserID: userID}
	if err := s.db.Where("user_id = ?", userID).FirstOrCreate(savings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return savings, nil
}
