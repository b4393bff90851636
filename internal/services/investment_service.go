package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// investmentService manages the append-only investment ledger. Rows are
// never updated or deleted; contributions and withdrawals both append, and
// the displayed total is a fold over the user's full ledger.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// AddEntry appends one delta row to the ledger. AmountInvested may be
// negative for a withdrawal; a zero delta records nothing useful and is
// rejected.
func (s *investmentService) AddEntry(userID uint, name, investmentType string, amountInvested, currentValue float64) (*models.Investment, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if investmentType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type is required")
	}
	if amountInvested == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount invested cannot be zero")
	}

	entry := &models.Investment{
		UserID:         userID,
		Name:           name,
		Type:           investmentType,
		AmountInvested: amountInvested,
		CurrentValue:   currentValue,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// GetUserInvestments returns the user's full ledger, newest entry first.
func (s *investmentService) GetUserInvestments(userID uint) ([]models.Investment, error) {
	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// GetInvestmentByID returns a ledger entry by ID if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID uint) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}

// GetTotalInvested folds the ledger into the user's current invested total.
// The sum is recomputed from all rows on every read; nothing is memoized.
func (s *investmentService) GetTotalInvested(userID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Investment{}).
		Select("COALESCE(SUM(amount_invested), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
