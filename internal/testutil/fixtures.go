package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"networth/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
		Currency: "USD",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestIncome creates an income entry with the given amount.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Amount: amount,
		Date:   time.Now(),
		Source: fmt.Sprintf("Test Source %d", nextID()),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense entry with the given amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Date:     time.Now(),
		Category: "Groceries",
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBill creates a bill due a week from now.
func CreateTestBill(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Bill %d", nextID()),
		Amount:   amount,
		DueDate:  time.Now().AddDate(0, 0, 7),
		Category: "Utilities",
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestAsset creates an asset with the given value.
func CreateTestAsset(t *testing.T, db *gorm.DB, userID uint, value float64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Asset %d", nextID()),
		Value:    value,
		Date:     time.Now(),
		Category: "Property",
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestGoal creates an in-progress goal with the given target and
// current amounts.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, targetAmount, currentAmount float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Title:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    time.Now().AddDate(1, 0, 0),
		Category:      "Savings",
		Priority:      3,
		Status:        models.GoalStatusInProgress,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestSavings creates the user's savings row with the given balance.
func CreateTestSavings(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Savings {
	t.Helper()

	savings := &models.Savings{
		UserID: userID,
		Amount: amount,
	}
	if err := db.Create(savings).Error; err != nil {
		t.Fatalf("failed to create test savings: %v", err)
	}
	return savings
}

// CreateTestInvestment appends a ledger entry with the given signed delta.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID uint, amountInvested float64) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Fund %d", nextID()),
		Type:           "Stocks",
		AmountInvested: amountInvested,
		CurrentValue:   amountInvested,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
