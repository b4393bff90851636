package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// MaxExpenseAmount is the upper bound accepted for a single expense.
const MaxExpenseAmount = 999999

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense for the user.
func (s *expenseService) CreateExpense(userID uint, title string, amount float64, date time.Time, category, description string) (*models.Expense, error) {
	if err := validateExpenseAmount(amount); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	expense := &models.Expense{
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Date:        date,
		Category:    category,
		Description: description,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses returns all of the user's expenses, newest first.
func (s *expenseService) GetUserExpenses(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// GetExpensesByCategory returns the user's expenses in one category, newest first.
func (s *expenseService) GetExpensesByCategory(userID uint, category string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND category = ?", userID, category).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// UpdateExpense overwrites only the supplied fields of an expense.
func (s *expenseService) UpdateExpense(userID, expenseID uint, title string, amount *float64, date *time.Time, category string, description *string) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		if err := validateExpenseAmount(*amount); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if date != nil {
		updates["date"] = *date
	}
	if category != "" {
		updates["category"] = category
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return expense, nil
}

// DeleteExpense deletes an expense scoped by user.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTotalExpenses sums all of the user's expense amounts, 0 when empty.
func (s *expenseService) GetTotalExpenses(userID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetTopExpenses returns the user's largest expenses, largest first.
func (s *expenseService) GetTopExpenses(userID uint, limit int) ([]TopEntry, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ?", userID).
		Order("amount DESC").
		Limit(clampTopLimit(limit)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]TopEntry, 0, len(expenses))
	for _, expense := range expenses {
		entries = append(entries, TopEntry{
			ID:       expense.ID,
			Label:    expense.Title,
			Amount:   expense.Amount,
			Category: expense.Category,
			Date:     expense.Date,
		})
	}
	return entries, nil
}

func validateExpenseAmount(amount float64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if amount > MaxExpenseAmount {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount exceeds the maximum allowed")
	}
	return nil
}
