package services

import (
	"context"
	"testing"
	"time"
)

func TestBudgetCreateValidation(t *testing.T) {
	svc := NewBudgetService(&mockBudgets{}, nil, nil)

	if _, err := svc.Create("u1", "", 0); err == nil {
		t.Error("expected error for missing month")
	}
	if _, err := svc.Create("u1", "2025-03", -1); err == nil {
		t.Error("expected error for negative savings goal")
	}

	b, err := svc.Create("u1", "2025-03", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Month != "2025-03" || b.SavingsGoal != 500 || b.TotalIncome != 0 {
		t.Errorf("created budget = %+v", b)
	}
}

func TestEntryAmountValidation(t *testing.T) {
	// Amount checks run before any storage access.
	svc := NewBudgetService(nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddIncome(ctx, "u1", "b1", "salary", 0, time.Time{}); err == nil {
		t.Error("expected error for zero income amount")
	}
	if _, err := svc.UpdateIncome(ctx, "u1", "i1", "salary", -5, time.Time{}); err == nil {
		t.Error("expected error for negative income amount")
	}
	if _, err := svc.AddExpense(ctx, "u1", "b1", "food", -1, time.Time{}); err == nil {
		t.Error("expected error for negative expense amount")
	}
	if _, err := svc.AddExpense(ctx, "u1", "b1", "", 10, time.Time{}); err == nil {
		t.Error("expected error for missing category")
	}
}
