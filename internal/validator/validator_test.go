package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type currencyPayload struct {
	Currency string `binding:"iso4217"`
}

type statusPayload struct {
	Status string `binding:"goal_status"`
}

func validate(t *testing.T, payload interface{}) error {
	t.Helper()
	Register()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("expected validator engine")
	}
	return v.Struct(payload)
}

func TestISO4217(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "MYR", "JPY"} {
		if err := validate(t, currencyPayload{Currency: code}); err != nil {
			t.Errorf("expected %s to be valid: %v", code, err)
		}
	}
	for _, code := range []string{"usd", "DOLLARS", "X", ""} {
		if err := validate(t, currencyPayload{Currency: code}); err == nil {
			t.Errorf("expected %q to be rejected", code)
		}
	}
}

func TestGoalStatus(t *testing.T) {
	for _, status := range []string{"In Progress", "Completed", "Cancelled"} {
		if err := validate(t, statusPayload{Status: status}); err != nil {
			t.Errorf("expected %q to be valid: %v", status, err)
		}
	}
	for _, status := range []string{"in progress", "Done", ""} {
		if err := validate(t, statusPayload{Status: status}); err == nil {
			t.Errorf("expected %q to be rejected", status)
		}
	}
}
