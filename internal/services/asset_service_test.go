package services

import (
	"testing"
	"time"

	"networth/internal/testutil"
)

func TestCreateAsset(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		asset, err := svc.CreateAsset(user.ID, "Car", 18500, time.Now(), "Vehicle", "")
		testutil.AssertNoError(t, err)

		if asset.ID == 0 {
			t.Fatal("expected non-zero asset ID")
		}
		if asset.Value != 18500 {
			t.Errorf("expected value 18500, got %v", asset.Value)
		}
	})

	t.Run("zero_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAsset(user.ID, "Nothing", 0, time.Now(), "Misc", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserAssets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)
	user1 := testutil.CreateTestUser(t, db)
	user2 := testutil.CreateTestUser(t, db)

	testutil.CreateTestAsset(t, db, user1.ID, 10000)
	testutil.CreateTestAsset(t, db, user1.ID, 5000)
	testutil.CreateTestAsset(t, db, user2.ID, 99999)

	assets, err := svc.GetUserAssets(user1.ID)
	testutil.AssertNoError(t, err)

	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
}

func TestGetAssetByID(t *testing.T) {
	t.Run("other_users_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		asset := testutil.CreateTestAsset(t, db, user2.ID, 5000)

		_, err := svc.GetAssetByID(user1.ID, asset.ID)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestUpdateAsset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)
	user := testutil.CreateTestUser(t, db)
	created := testutil.CreateTestAsset(t, db, user.ID, 20000)

	value := 17500.0
	asset, err := svc.UpdateAsset(user.ID, created.ID, "", &value, nil, "", nil)
	testutil.AssertNoError(t, err)

	if asset.Value != 17500 {
		t.Errorf("expected value 17500, got %v", asset.Value)
	}
	if asset.Name != created.Name {
		t.Errorf("name should be unchanged, got %s", asset.Name)
	}
}

func TestDeleteAsset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)
	user := testutil.CreateTestUser(t, db)
	created := testutil.CreateTestAsset(t, db, user.ID, 20000)

	testutil.AssertNoError(t, svc.DeleteAsset(user.ID, created.ID))

	_, err := svc.GetAssetByID(user.ID, created.ID)
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
}

func TestGetTotalAssetValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestAsset(t, db, user.ID, 15000)
	testutil.CreateTestAsset(t, db, user.ID, 8456)

	total, err := svc.GetTotalAssetValue(user.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertFloatEquals(t, 23456, total)
}

func TestGetTopAssets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)
	user := testutil.CreateTestUser(t, db)

	for _, value := range []float64{1000, 50000, 20000} {
		testutil.CreateTestAsset(t, db, user.ID, value)
	}

	entries, err := svc.GetTopAssets(user.ID, 2)
	testutil.AssertNoError(t, err)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Amount != 50000 {
		t.Errorf("expected largest first, got %v", entries[0].Amount)
	}
}
