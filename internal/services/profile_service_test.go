package services

import (
	"errors"
	"testing"

	"github.com/finsight/finsight-backend/internal/models"
)

func TestProfileGetOrCreateComputesWhenAbsent(t *testing.T) {
	budgets := &mockBudgets{budgets: []models.Budget{
		{
			UserID: "u1", Month: "2025-01",
			TotalIncome: 5000, TotalExpenses: 3000, ActualSavings: 2000,
			Expenses: []models.Expense{{Category: "rent", Amount: 2000}, {Category: "food", Amount: 1000}},
		},
		{
			UserID: "u1", Month: "2025-02",
			TotalIncome: 5000, TotalExpenses: 3500, ActualSavings: 1500,
			Expenses: []models.Expense{{Category: "rent", Amount: 2000}, {Category: "travel", Amount: 1500}},
		},
	}}
	profiles := &mockProfiles{}
	svc := NewProfileService(profiles, budgets)

	p, err := svc.GetOrCreate("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Lifetime savings rate 3500/10000 = 35% classifies as SAVER.
	if p.PersonalityType != models.PersonalitySaver {
		t.Errorf("personality = %s, want SAVER", p.PersonalityType)
	}
	if p.SavingsRate != 35 {
		t.Errorf("savings rate = %v, want 35", p.SavingsRate)
	}
	if p.RiskTolerance != 0.2 {
		t.Errorf("risk tolerance = %v, want 0.2", p.RiskTolerance)
	}
	if p.SpendingHabits["rent"] != 4000 {
		t.Errorf("rent habit = %v, want 4000", p.SpendingHabits["rent"])
	}
	if profiles.creates != 1 {
		t.Errorf("creates = %d, want 1", profiles.creates)
	}
}

func TestProfileGetOrCreateReturnsStored(t *testing.T) {
	profiles := &mockProfiles{stored: &models.FinancialProfile{
		ID: "profile-1", UserID: "u1", PersonalityType: models.PersonalityBalanced,
	}}
	svc := NewProfileService(profiles, &mockBudgets{})

	p, err := svc.GetOrCreate("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PersonalityType != models.PersonalityBalanced {
		t.Errorf("personality = %s, want stored BALANCED", p.PersonalityType)
	}
	if profiles.creates != 0 {
		t.Errorf("existing profile must not be recomputed, creates = %d", profiles.creates)
	}
}

func TestProfileGetOrCreateEmptyHistory(t *testing.T) {
	profiles := &mockProfiles{}
	svc := NewProfileService(profiles, &mockBudgets{})

	p, err := svc.GetOrCreate("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PersonalityType != models.PersonalityConservative {
		t.Errorf("no history must classify CONSERVATIVE, got %s", p.PersonalityType)
	}
	if p.SavingsRate != 0 {
		t.Errorf("savings rate = %v, want 0", p.SavingsRate)
	}
}

func TestProfileGetWithoutCompute(t *testing.T) {
	svc := NewProfileService(&mockProfiles{}, &mockBudgets{})
	_, err := svc.Get("u1")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}
