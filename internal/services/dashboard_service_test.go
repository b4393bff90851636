package services

import (
	"testing"

	"gorm.io/gorm"

	"networth/internal/testutil"
)

func newDashboard(db *gorm.DB) DashboardServicer {
	return NewDashboardService(
		NewIncomeService(db),
		NewExpenseService(db),
		NewBillService(db),
		NewAssetService(db),
		NewGoalService(db),
		NewSavingsService(db),
		NewInvestmentService(db),
	)
}

func TestGetNetWorth(t *testing.T) {
	t.Run("all_terms", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newDashboard(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestIncome(t, db, user.ID, 7890)
		testutil.CreateTestExpense(t, db, user.ID, 12345)
		testutil.CreateTestSavings(t, db, user.ID, 500)
		testutil.CreateTestAsset(t, db, user.ID, 23456)
		testutil.CreateTestInvestment(t, db, user.ID, 45678)

		summary, err := svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertFloatEquals(t, 7890, summary.TotalIncome)
		testutil.AssertFloatEquals(t, 12345, summary.TotalExpenses)
		testutil.AssertFloatEquals(t, 500, summary.TotalSavings)
		testutil.AssertFloatEquals(t, 23456, summary.TotalAssets)
		testutil.AssertFloatEquals(t, 45678, summary.TotalInvestments)
		testutil.AssertFloatEquals(t, 65179, summary.NetWorth)
	})

	t.Run("new_user_is_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newDashboard(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)

		if summary.NetWorth != 0 {
			t.Errorf("expected net worth 0 for new user, got %v", summary.NetWorth)
		}
	})

	t.Run("can_be_negative", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newDashboard(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestIncome(t, db, user.ID, 100)
		testutil.CreateTestExpense(t, db, user.ID, 400)

		summary, err := svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertFloatEquals(t, -300, summary.NetWorth)
	})

	t.Run("isolated_between_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newDashboard(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestIncome(t, db, user1.ID, 1000)
		testutil.CreateTestIncome(t, db, user2.ID, 99999)

		summary, err := svc.GetNetWorth(user1.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertFloatEquals(t, 1000, summary.NetWorth)
	})

	t.Run("reflects_deletes_immediately", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newDashboard(db)
		expenseSvc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestIncome(t, db, user.ID, 1000)
		expense := testutil.CreateTestExpense(t, db, user.ID, 250)

		summary, err := svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertFloatEquals(t, 750, summary.NetWorth)

		testutil.AssertNoError(t, expenseSvc.DeleteExpense(user.ID, expense.ID))

		summary, err = svc.GetNetWorth(user.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertFloatEquals(t, 1000, summary.NetWorth)
	})
}

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newDashboard(db)
	user := testutil.CreateTestUser(t, db)

	for _, amount := range []float64{100, 500, 300, 200, 400} {
		testutil.CreateTestIncome(t, db, user.ID, amount)
	}
	testutil.CreateTestExpense(t, db, user.ID, 50)
	testutil.CreateTestBill(t, db, user.ID, 75)
	testutil.CreateTestGoal(t, db, user.ID, 1000, 500)

	summary, err := svc.GetSummary(user.ID)
	testutil.AssertNoError(t, err)

	if len(summary.TopIncomes) != TopListDefault {
		t.Errorf("expected %d top incomes, got %d", TopListDefault, len(summary.TopIncomes))
	}
	if summary.TopIncomes[0].Amount != 500 {
		t.Errorf("expected largest income first, got %v", summary.TopIncomes[0].Amount)
	}
	testutil.AssertFloatEquals(t, 75, summary.TotalBills)
	testutil.AssertFloatEquals(t, 50, summary.GoalProgress)
	testutil.AssertFloatEquals(t, 1450, summary.NetWorth.NetWorth)
	if summary.FormattedWorth != "$1,450.00" {
		t.Errorf("expected formatted worth $1,450.00, got %s", summary.FormattedWorth)
	}
}
