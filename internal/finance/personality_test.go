package finance

import (
	"testing"

	"github.com/finsight/finsight-backend/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name                                     string
		totalIncome, totalExpenses, totalSavings float64
		want                                     models.PersonalityType
		wantTolerance                            float64
	}{
		{"saver above 30", 10000, 6500, 3500, models.PersonalitySaver, 0.2},
		{"exactly 30 is not saver", 1000, 700, 300, models.PersonalityBalanced, 0.5},
		{"balanced", 1000, 750, 250, models.PersonalityBalanced, 0.5},
		{"exactly 20 is not balanced", 1000, 800, 200, models.PersonalityAggressive, 0.8},
		{"aggressive", 1000, 850, 150, models.PersonalityAggressive, 0.8},
		{"exactly 10 falls through to conservative", 1000, 900, 100, models.PersonalityConservative, 0.3},
		{"spender when expenses exceed 90 percent", 1000, 950, 50, models.PersonalitySpender, 0.1},
		{"conservative low spend low save", 1000, 890, 20, models.PersonalityConservative, 0.3},
		{"zero history is conservative", 0, 0, 0, models.PersonalityConservative, 0.3},
		{"zero income with expenses is spender", 0, 100, -100, models.PersonalitySpender, 0.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Classify(tc.totalIncome, tc.totalExpenses, tc.totalSavings)
			if c.PersonalityType != tc.want {
				t.Errorf("Classify(%v,%v,%v) = %s, want %s",
					tc.totalIncome, tc.totalExpenses, tc.totalSavings, c.PersonalityType, tc.want)
			}
			if c.RiskTolerance != tc.wantTolerance {
				t.Errorf("risk tolerance = %v, want %v", c.RiskTolerance, tc.wantTolerance)
			}
			if c.Advice == "" {
				t.Error("advice must not be empty")
			}
		})
	}
}

func TestClassifySavingsRate(t *testing.T) {
	c := Classify(10000, 6500, 3500)
	if c.SavingsRate != 35 {
		t.Errorf("savings rate = %v, want 35", c.SavingsRate)
	}
	// Zero income never divides.
	if c := Classify(0, 50, -50); c.SavingsRate != 0 {
		t.Errorf("zero-income savings rate = %v, want 0", c.SavingsRate)
	}
}

func TestAggregate(t *testing.T) {
	budgets := []models.Budget{
		{
			TotalIncome: 5000, TotalExpenses: 3000, ActualSavings: 2000,
			Expenses: []models.Expense{
				{Category: "rent", Amount: 2000},
				{Category: "food", Amount: 1000},
			},
		},
		{
			TotalIncome: 5000, TotalExpenses: 3500, ActualSavings: 1500,
			Expenses: []models.Expense{
				{Category: "rent", Amount: 2000},
				{Category: "travel", Amount: 1500},
			},
		},
	}

	agg := Aggregate(budgets)
	if agg.TotalIncome != 10000 || agg.TotalExpenses != 6500 || agg.TotalSavings != 3500 {
		t.Errorf("totals = %+v", agg)
	}
	if agg.CategoryExpenses["rent"] != 4000 {
		t.Errorf("rent total = %v, want 4000", agg.CategoryExpenses["rent"])
	}
	if agg.CategoryExpenses["food"] != 1000 || agg.CategoryExpenses["travel"] != 1500 {
		t.Errorf("category map = %v", agg.CategoryExpenses)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	if agg.TotalIncome != 0 || agg.TotalExpenses != 0 || agg.TotalSavings != 0 {
		t.Errorf("empty aggregate = %+v, want zeros", agg)
	}
	if len(agg.CategoryExpenses) != 0 {
		t.Errorf("empty aggregate has categories: %v", agg.CategoryExpenses)
	}
}
