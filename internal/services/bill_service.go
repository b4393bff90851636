package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// billService handles bill-related business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill records a new bill for the user.
func (s *billService) CreateBill(userID uint, title string, amount float64, dueDate time.Time, category, description string) (*models.Bill, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	bill := &models.Bill{
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		DueDate:     dueDate,
		Category:    category,
		Description: description,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return bill, nil
}

// GetUserBills returns all of the user's bills, soonest due first.
func (s *billService) GetUserBills(userID uint) ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.db.Where("user_id = ?", userID).Order("due_date ASC").Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// GetBillByID returns a bill by ID if it belongs to the user.
func (s *billService) GetBillByID(userID, billID uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// GetBillsByCategory returns the user's bills in one category, soonest due first.
func (s *billService) GetBillsByCategory(userID uint, category string) ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.db.Where("user_id = ? AND category = ?", userID, category).Order("due_date ASC").Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// UpdateBill overwrites only the supplied fields of a bill.
func (s *billService) UpdateBill(userID, billID uint, title string, amount *float64, dueDate *time.Time, category string, description *string) (*models.Bill, error) {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if dueDate != nil {
		updates["due_date"] = *dueDate
	}
	if category != "" {
		updates["category"] = category
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(bill).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return bill, nil
}

// DeleteBill deletes a bill scoped by user.
func (s *billService) DeleteBill(userID, billID uint) error {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTotalBills sums all of the user's bill amounts, 0 when empty.
func (s *billService) GetTotalBills(userID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Bill{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetTopBills returns the user's largest bills, largest first.
func (s *billService) GetTopBills(userID uint, limit int) ([]TopEntry, error) {
	var bills []models.Bill
	err := s.db.Where("user_id = ?", userID).
		Order("amount DESC").
		Limit(clampTopLimit(limit)).
		Find(&bills).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]TopEntry, 0, len(bills))
	for _, bill := range bills {
		entries = append(entries, TopEntry{
			ID:       bill.ID,
			Label:    bill.Title,
			Amount:   bill.Amount,
			Category: bill.Category,
			Date:     bill.DueDate,
		})
	}
	return entries, nil
}
