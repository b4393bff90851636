package services

import (
	"testing"
	"time"

	"networth/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "Groceries", 82.40, time.Now(), "Food", "weekly shop")
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Fatal("expected non-zero expense ID")
		}
		if expense.Title != "Groceries" {
			t.Errorf("expected title Groceries, got %s", expense.Title)
		}
		if expense.Amount != 82.40 {
			t.Errorf("expected amount 82.40, got %v", expense.Amount)
		}
	})

	t.Run("amount_at_cap", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "House", MaxExpenseAmount, time.Now(), "Property", "")
		testutil.AssertNoError(t, err)
		if expense.Amount != MaxExpenseAmount {
			t.Errorf("expected amount %d, got %v", MaxExpenseAmount, expense.Amount)
		}
	})

	t.Run("amount_over_cap", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Yacht", MaxExpenseAmount+1, time.Now(), "Luxury", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Nothing", 0, time.Now(), "Misc", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "", 10, time.Now(), "Misc", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user1 := testutil.CreateTestUser(t, db)
	user2 := testutil.CreateTestUser(t, db)

	testutil.CreateTestExpense(t, db, user1.ID, 10)
	testutil.CreateTestExpense(t, db, user1.ID, 20)
	testutil.CreateTestExpense(t, db, user2.ID, 30)

	expenses, err := svc.GetUserExpenses(user1.ID)
	testutil.AssertNoError(t, err)

	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	for _, expense := range expenses {
		if expense.UserID != user1.ID {
			t.Errorf("expected user %d, got %d", user1.ID, expense.UserID)
		}
	}
}

func TestGetExpensesByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.CreateExpense(user.ID, "Lunch", 12, time.Now(), "Food", "")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateExpense(user.ID, "Dinner", 30, time.Now(), "Food", "")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateExpense(user.ID, "Bus", 3, time.Now(), "Transport", "")
	testutil.AssertNoError(t, err)

	expenses, err := svc.GetExpensesByCategory(user.ID, "Food")
	testutil.AssertNoError(t, err)

	if len(expenses) != 2 {
		t.Fatalf("expected 2 food expenses, got %d", len(expenses))
	}
}

func TestGetExpenseByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetExpenseByID(user.ID, 9999)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("other_users_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user2.ID, 50)

		_, err := svc.GetExpenseByID(user1.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestExpense(t, db, user.ID, 100)

		amount := 150.0
		expense, err := svc.UpdateExpense(user.ID, created.ID, "", &amount, nil, "", nil)
		testutil.AssertNoError(t, err)

		if expense.Amount != 150 {
			t.Errorf("expected amount 150, got %v", expense.Amount)
		}
		if expense.Title != created.Title {
			t.Errorf("title should be unchanged, got %s", expense.Title)
		}
	})

	t.Run("amount_over_cap", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestExpense(t, db, user.ID, 100)

		amount := float64(MaxExpenseAmount + 1)
		_, err := svc.UpdateExpense(user.ID, created.ID, "", &amount, nil, "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	created := testutil.CreateTestExpense(t, db, user.ID, 75)

	before, err := svc.GetTotalExpenses(user.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertFloatEquals(t, 75, before)

	err = svc.DeleteExpense(user.ID, created.ID)
	testutil.AssertNoError(t, err)

	_, err = svc.GetExpenseByID(user.ID, created.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

	after, err := svc.GetTotalExpenses(user.ID)
	testutil.AssertNoError(t, err)
	if after != 0 {
		t.Errorf("expected total 0 after delete, got %v", after)
	}
}

func TestGetTotalExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestExpense(t, db, user.ID, 100)
	testutil.CreateTestExpense(t, db, user.ID, 23.45)

	total, err := svc.GetTotalExpenses(user.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertFloatEquals(t, 123.45, total)
}

func TestGetTopExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)

	for _, amount := range []float64{10, 90, 40, 70, 20} {
		testutil.CreateTestExpense(t, db, user.ID, amount)
	}

	entries, err := svc.GetTopExpenses(user.ID, 3)
	testutil.AssertNoError(t, err)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Amount != 90 || entries[1].Amount != 70 || entries[2].Amount != 40 {
		t.Errorf("unexpected top expenses: %v %v %v", entries[0].Amount, entries[1].Amount, entries[2].Amount)
	}
}
