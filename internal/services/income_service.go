package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncome records a new income entry for the user.
func (s *incomeService) CreateIncome(userID uint, amount float64, date time.Time, source, description string) (*models.Income, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
	}

	income := &models.Income{
		UserID:      userID,
		Amount:      amount,
		Date:        date,
		Source:      source,
		Description: description,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetUserIncomes returns all of the user's income entries, newest first.
func (s *incomeService) GetUserIncomes(userID uint) ([]models.Income, error) {
	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// GetIncomeByID returns an income entry by ID if it belongs to the user.
func (s *incomeService) GetIncomeByID(userID, incomeID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// GetIncomesBySource returns the user's income entries from one source, newest first.
func (s *incomeService) GetIncomesBySource(userID uint, source string) ([]models.Income, error) {
	var incomes []models.Income
	if err := s.db.Where("user_id = ? AND source = ?", userID, source).Order("date DESC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// UpdateIncome overwrites only the supplied fields of an income entry.
func (s *incomeService) UpdateIncome(userID, incomeID uint, amount *float64, date *time.Time, source string, description *string) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	updates := make(map[string]interface{})
	if amount != nil {
		updates["amount"] = *amount
	}
	if date != nil {
		updates["date"] = *date
	}
	if source != "" {
		updates["source"] = source
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return income, nil
}

// DeleteIncome deletes an income entry scoped by user.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTotalIncome sums all of the user's income amounts. A user with no
// entries gets 0, not an error.
func (s *incomeService) GetTotalIncome(userID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetTopIncomes returns the user's highest income entries, largest first.
func (s *incomeService) GetTopIncomes(userID uint, limit int) ([]TopEntry, error) {
	var incomes []models.Income
	err := s.db.Where("user_id = ?", userID).
		Order("amount DESC").
		Limit(clampTopLimit(limit)).
		Find(&incomes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]TopEntry, 0, len(incomes))
	for _, income := range incomes {
		entries = append(entries, TopEntry{
			ID:     income.ID,
			Label:  income.Source,
			Amount: income.Amount,
			Date:   income.Date,
		})
	}
	return entries, nil
}
