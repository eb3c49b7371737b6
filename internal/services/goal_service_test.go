package services

import (
	"context"
	"errors"
	"testing"

	"github.com/finsight/finsight-backend/internal/models"
)

func savedProfile() *models.FinancialProfile {
	return &models.FinancialProfile{
		UserID:          "u1",
		PersonalityType: models.PersonalityBalanced,
		RiskTolerance:   0.5,
		SavingsRate:     20,
	}
}

func sixBudgets() []models.Budget {
	out := make([]models.Budget, 6)
	for i := range out {
		out[i] = models.Budget{UserID: "u1", TotalIncome: 50000, TotalExpenses: 40000, ActualSavings: 10000}
	}
	return out
}

func TestGoalPlan(t *testing.T) {
	goals := &mockGoals{}
	adv := &stubAdvisor{text: `[{"type":"budgeting","suggestion":"Cut dining out","impact":"₹2000/month"}]`}
	svc := NewGoalService(goals, &mockBudgets{budgets: sixBudgets()}, &mockProfiles{stored: savedProfile()}, adv)

	plan, err := svc.Plan(context.Background(), "u1", "Emergency Fund", 100000, 12, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// avg income 50000 at 20% savings rate: 10000 capacity vs 7500 required.
	if !plan.Feasibility.IsFeasible {
		t.Error("expected feasible plan")
	}
	if plan.Feasibility.RequiredMonthlyContribution != "7500" {
		t.Errorf("required monthly = %q, want 7500", plan.Feasibility.RequiredMonthlyContribution)
	}
	if plan.Feasibility.MaxMonthlySavings != "10000" {
		t.Errorf("max monthly savings = %q, want 10000", plan.Feasibility.MaxMonthlySavings)
	}
	if plan.TimeToGoal.Months != "9.0" {
		t.Errorf("time to goal = %q months, want 9.0", plan.TimeToGoal.Months)
	}
	if plan.TimeToGoal.Years != "0.8" {
		t.Errorf("time to goal = %q years, want 0.8", plan.TimeToGoal.Years)
	}
	if len(plan.Strategies) != 1 || plan.Strategies[0].Suggestion != "Cut dining out" {
		t.Errorf("strategies = %+v", plan.Strategies)
	}
	if len(goals.goals) != 1 {
		t.Fatalf("goal not persisted")
	}
	g := goals.goals[0]
	if g.Title != "Emergency Fund" || g.Status != models.GoalActive || g.TargetAmount != 100000 {
		t.Errorf("persisted goal = %+v", g)
	}
}

func TestGoalPlanZeroCapacity(t *testing.T) {
	// No budget history: zero capacity, infinite time to goal serialized as
	// the string "Infinity".
	adv := &stubAdvisor{err: errors.New("down")}
	svc := NewGoalService(&mockGoals{}, &mockBudgets{}, &mockProfiles{stored: savedProfile()}, adv)

	plan, err := svc.Plan(context.Background(), "u1", "House", 500000, 24, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Feasibility.IsFeasible {
		t.Error("expected infeasible plan")
	}
	if plan.TimeToGoal.Months != "Infinity" || plan.TimeToGoal.Years != "Infinity" {
		t.Errorf("time to goal = %+v, want Infinity", plan.TimeToGoal)
	}
}

func TestGoalPlanFallbackStrategies(t *testing.T) {
	adv := &stubAdvisor{text: "Sorry, I can't format that as JSON."}
	svc := NewGoalService(&mockGoals{}, &mockBudgets{budgets: sixBudgets()}, &mockProfiles{stored: savedProfile()}, adv)

	plan, err := svc.Plan(context.Background(), "u1", "Trip", 60000, 6, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Strategies) != 4 {
		t.Fatalf("strategies = %+v, want 4 fallback entries", plan.Strategies)
	}
	if plan.Strategies[0].Type != "budgeting" || plan.Strategies[2].Suggestion != "Automate Savings" {
		t.Errorf("fallback strategies = %+v", plan.Strategies)
	}
}

func TestGoalPlanValidation(t *testing.T) {
	svc := NewGoalService(&mockGoals{}, &mockBudgets{}, &mockProfiles{stored: savedProfile()}, &stubAdvisor{})

	cases := []struct {
		name            string
		goalName        string
		target          float64
		months          int
		currentSavings  float64
	}{
		{"missing name", "", 1000, 12, 0},
		{"zero target", "G", 0, 12, 0},
		{"zero timeframe", "G", 1000, 0, 0},
		{"negative savings", "G", 1000, 12, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Plan(context.Background(), "u1", tc.goalName, tc.target, tc.months, tc.currentSavings); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGoalPlanRequiresProfile(t *testing.T) {
	svc := NewGoalService(&mockGoals{}, &mockBudgets{}, &mockProfiles{}, &stubAdvisor{})
	_, err := svc.Plan(context.Background(), "u1", "G", 1000, 12, 0)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestGoalSuggestionsParseFailureIsEmptyList(t *testing.T) {
	adv := &stubAdvisor{text: "no json here"}
	svc := NewGoalService(&mockGoals{}, &mockBudgets{budgets: sixBudgets()}, &mockProfiles{stored: savedProfile()}, adv)

	got, err := svc.Suggestions(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %+v, want empty non-nil list", got)
	}
}

func TestGoalSuggestions(t *testing.T) {
	adv := &stubAdvisor{text: "```json\n[{\"goalName\":\"Emergency Fund\",\"targetAmount\":150000,\"timeframeMonths\":12,\"priority\":\"high\",\"category\":\"emergency\"}]\n```"}
	svc := NewGoalService(&mockGoals{}, &mockBudgets{budgets: sixBudgets()}, &mockProfiles{stored: savedProfile()}, adv)

	got, err := svc.Suggestions(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].GoalName != "Emergency Fund" || got[0].TimeframeMonths != 12 {
		t.Errorf("got %+v", got)
	}
}

func TestGoalUpdateStatus(t *testing.T) {
	goals := &mockGoals{goals: []models.Goal{{ID: "goal-1", UserID: "u1", Status: models.GoalActive}}}
	svc := NewGoalService(goals, &mockBudgets{}, &mockProfiles{}, &stubAdvisor{})

	g, err := svc.UpdateStatus("goal-1", "u1", models.GoalAchieved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status != models.GoalAchieved {
		t.Errorf("status = %s, want ACHIEVED", g.Status)
	}

	if _, err := svc.UpdateStatus("goal-1", "u1", "DONE"); err == nil {
		t.Error("expected error for invalid status")
	}
	if _, err := svc.UpdateStatus("missing", "u1", models.GoalAbandoned); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}
