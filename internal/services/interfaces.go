package services

import (
	"time"

	"networth/internal/models"
)

// TopEntry is one row of a top-N list: the highest-amount records of a kind,
// reduced to what the dashboard cards display.
type TopEntry struct {
	ID       uint      `json:"id"`
	Label    string    `json:"label"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category,omitempty"`
	Date     time.Time `json:"date"`
}

// Top-N limits. Requested limits are clamped server-side to [1, TopListMax].
const (
	TopListDefault = 4
	TopListMax     = 10
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	UpdateProfile(userID uint, name, email string, settings *UserSettings) (*models.User, error)
}

// UserSettings holds the optional preference fields of a profile update.
type UserSettings struct {
	DarkMode      *bool
	Currency      *string
	Notifications *bool
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID uint, amount float64, date time.Time, source, description string) (*models.Income, error)
	GetUserIncomes(userID uint) ([]models.Income, error)
	GetIncomeByID(userID, incomeID uint) (*models.Income, error)
	GetIncomesBySource(userID uint, source string) ([]models.Income, error)
	UpdateIncome(userID, incomeID uint, amount *float64, date *time.Time, source string, description *string) (*models.Income, error)
	DeleteIncome(userID, incomeID uint) error
	GetTotalIncome(userID uint) (float64, error)
	GetTopIncomes(userID uint, limit int) ([]TopEntry, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID uint, title string, amount float64, date time.Time, category, description string) (*models.Expense, error)
	GetUserExpenses(userID uint) ([]models.Expense, error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	GetExpensesByCategory(userID uint, category string) ([]models.Expense, error)
	UpdateExpense(userID, expenseID uint, title string, amount *float64, date *time.Time, category string, description *string) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	GetTotalExpenses(userID uint) (float64, error)
	GetTopExpenses(userID uint, limit int) ([]TopEntry, error)
}

// BillServicer defines the contract for bill-related business logic.
type BillServicer interface {
	CreateBill(userID uint, title string, amount float64, dueDate time.Time, category, description string) (*models.Bill, error)
	GetUserBills(userID uint) ([]models.Bill, error)
	GetBillByID(userID, billID uint) (*models.Bill, error)
	GetBillsByCategory(userID uint, category string) ([]models.Bill, error)
	UpdateBill(userID, billID uint, title string, amount *float64, dueDate *time.Time, category string, description *string) (*models.Bill, error)
	DeleteBill(userID, billID uint) error
	GetTotalBills(userID uint) (float64, error)
	GetTopBills(userID uint, limit int) ([]TopEntry, error)
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	CreateAsset(userID uint, name string, value float64, date time.Time, category, description string) (*models.Asset, error)
	GetUserAssets(userID uint) ([]models.Asset, error)
	GetAssetByID(userID, assetID uint) (*models.Asset, error)
	GetAssetsByCategory(userID uint, category string) ([]models.Asset, error)
	UpdateAsset(userID, assetID uint, name string, value *float64, date *time.Time, category string, description *string) (*models.Asset, error)
	DeleteAsset(userID, assetID uint) error
	GetTotalAssetValue(userID uint) (float64, error)
	GetTopAssets(userID uint, limit int) ([]TopEntry, error)
}

// GoalProgress contains a single goal's completion percentage.
type GoalProgress struct {
	GoalID   uint    `json:"goal_id"`
	Title    string  `json:"title"`
	Progress float64 `json:"progress"`
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID uint, title, description string, targetAmount, currentAmount float64, targetDate time.Time, category string, priority int) (*models.Goal, error)
	GetUserGoals(userID uint) ([]models.Goal, error)
	GetGoalByID(userID, goalID uint) (*models.Goal, error)
	UpdateGoal(userID, goalID uint, update GoalUpdate) (*models.Goal, error)
	DeleteGoal(userID, goalID uint) error
	GetTotalProgress(userID uint) (float64, error)
	GetGoalProgress(userID uint) ([]GoalProgress, error)
}

// GoalUpdate holds the optional fields of a goal update. Nil fields are left
// untouched; the status may move freely between any two values.
type GoalUpdate struct {
	Title         string
	Description   *string
	TargetAmount  *float64
	CurrentAmount *float64
	TargetDate    *time.Time
	Category      string
	Priority      *int
	Status        *models.GoalStatus
}

// SavingsServicer defines the contract for the per-user savings balance.
type SavingsServicer interface {
	GetSavings(userID uint) (float64, error)
	SetSavings(userID uint, amount float64) (*models.Savings, error)
	AdjustSavings(userID uint, delta float64) (*models.Savings, error)
}

// InvestmentServicer defines the contract for the investment ledger.
type InvestmentServicer interface {
	AddEntry(userID uint, name, investmentType string, amountInvested, currentValue float64) (*models.Investment, error)
	GetUserInvestments(userID uint) ([]models.Investment, error)
	GetInvestmentByID(userID, investmentID uint) (*models.Investment, error)
	GetTotalInvested(userID uint) (float64, error)
}

// NetWorthSummary is the derived net worth figure together with the five
// independent totals it is computed from. It has no persisted representation;
// every term defaults to 0 when the user has no rows of that kind.
type NetWorthSummary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	TotalSavings     float64 `json:"total_savings"`
	TotalAssets      float64 `json:"total_assets"`
	TotalInvestments float64 `json:"total_investments"`
	NetWorth         float64 `json:"net_worth"`
}

// DashboardSummary is the read-only view model the dashboard renders: the
// net worth block, top-N lists per contributing kind, and the two trackers
// that do not feed net worth (bills, goal progress).
type DashboardSummary struct {
	NetWorth       NetWorthSummary `json:"net_worth"`
	TopIncomes     []TopEntry      `json:"top_incomes"`
	TopExpenses    []TopEntry      `json:"top_expenses"`
	TopAssets      []TopEntry      `json:"top_assets"`
	TopBills       []TopEntry      `json:"top_bills"`
	TotalBills     float64         `json:"total_bills"`
	GoalProgress   float64         `json:"goal_progress"`
	FormattedWorth string          `json:"formatted_worth"`
}

// DashboardServicer composes the per-kind aggregates into dashboard views.
// It performs no writes.
type DashboardServicer interface {
	GetNetWorth(userID uint) (*NetWorthSummary, error)
	GetSummary(userID uint) (*DashboardSummary, error)
}
