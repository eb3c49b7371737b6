package finance

import "github.com/finsight/finsight-backend/internal/models"

// Aggregates are the lifetime totals across all of a user's budgets.
type Aggregates struct {
	TotalIncome      float64
	TotalExpenses    float64
	TotalSavings     float64
	CategoryExpenses map[string]float64
}

// Aggregate folds every budget and its expense entries into lifetime totals
// plus a per-category expense sum.
func Aggregate(budgets []models.Budget) Aggregates {
	agg := Aggregates{CategoryExpenses: map[string]float64{}}
	for _, b := range budgets {
		agg.TotalIncome += b.TotalIncome
		agg.TotalExpenses += b.TotalExpenses
		agg.TotalSavings += b.ActualSavings
		for _, e := range b.Expenses {
			agg.CategoryExpenses[e.Category] += e.Amount
		}
	}
	return agg
}

// Classification is the personality verdict for one user.
type Classification struct {
	PersonalityType models.PersonalityType
	RiskTolerance   float64
	SavingsRate     float64 // percent
	Advice          string
}

const (
	adviceSaver        = "You are a disciplined saver. Consider investing in low-risk options to grow your savings."
	adviceBalanced     = "You have a balanced approach. Diversify your investments for steady growth."
	adviceAggressive   = "You are willing to take risks. Focus on high-growth investments but maintain an emergency fund."
	adviceSpender      = "You enjoy spending. Create a budget to build savings and reduce debt."
	adviceConservative = "You are cautious. Build confidence with low-risk investments before exploring more."
)

// Classify buckets lifetime savings rate into one of five archetypes. The
// rules are order-sensitive and the savings-rate boundaries are exclusive:
// exactly 30% is not a SAVER. With no history every total is zero, the
// spender check (0 > 0*0.9) fails, and the user lands on CONSERVATIVE.
func Classify(totalIncome, totalExpenses, totalSavings float64) Classification {
	var savingsRate float64
	if totalIncome > 0 {
		savingsRate = totalSavings / totalIncome * 100
	}

	c := Classification{SavingsRate: savingsRate}
	switch {
	case savingsRate > 30:
		c.PersonalityType = models.PersonalitySaver
		c.RiskTolerance = 0.2
		c.Advice = adviceSaver
	case savingsRate > 20:
		c.PersonalityType = models.PersonalityBalanced
		c.RiskTolerance = 0.5
		c.Advice = adviceBalanced
	case savingsRate > 10:
		c.PersonalityType = models.PersonalityAggressive
		c.RiskTolerance = 0.8
		c.Advice = adviceAggressive
	case totalExpenses > totalIncome*0.9:
		c.PersonalityType = models.PersonalitySpender
		c.RiskTolerance = 0.1
		c.Advice = adviceSpender
	default:
		c.PersonalityType = models.PersonalityConservative
		c.RiskTolerance = 0.3
		c.Advice = adviceConservative
	}
	return c
}
