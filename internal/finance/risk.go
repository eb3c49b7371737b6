package finance

import "github.com/finsight/finsight-backend/internal/models"

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskAssessment is the credit-risk verdict for one user. It is computed on
// demand and never persisted.
type RiskAssessment struct {
	RiskLevel          RiskLevel `json:"risk_level"`
	Score              float64   `json:"score"` // [0,1], higher = riskier
	IncomeStability    float64   `json:"income_stability"`
	SpendingVolatility float64   `json:"spending_volatility"`
	AverageSavingsRate float64   `json:"average_savings_rate"` // fraction
}

// AssessRisk combines income variance, spending variance and average savings
// rate into a bounded score, then shifts it by the profile's personality and
// risk tolerance.
//
// The per-budget savings rate substitutes 1 for a zero income denominator,
// which yields a nonsensical rate for a genuinely zero-income month; kept for
// compatibility with historical assessments.
func AssessRisk(budgets []models.Budget, profile models.FinancialProfile) RiskAssessment {
	var incomeAmounts, expenseAmounts, savingsRates []float64
	for _, b := range budgets {
		for _, in := range b.Incomes {
			incomeAmounts = append(incomeAmounts, in.Amount)
		}
		for _, ex := range b.Expenses {
			expenseAmounts = append(expenseAmounts, ex.Amount)
		}
		denom := b.TotalIncome
		if denom == 0 {
			denom = 1
		}
		savingsRates = append(savingsRates, b.ActualSavings/denom)
	}

	incomeStability := PopulationVariance(incomeAmounts)
	spendingVolatility := PopulationVariance(expenseAmounts)
	averageSavingsRate := Mean(savingsRates)

	// Normalize: higher variance = higher risk, lower savings = higher risk.
	incomeRisk := min(incomeStability/10000, 1)
	spendingRisk := min(spendingVolatility/10000, 1)
	savingsRisk := 1 - averageSavingsRate

	score := incomeRisk*0.3 + spendingRisk*0.4 + savingsRisk*0.3

	if profile.PersonalityType == models.PersonalitySpender {
		score += 0.2
	}
	if profile.PersonalityType == models.PersonalitySaver {
		score -= 0.2
	}
	score += (1 - profile.RiskTolerance) * 0.1

	score = max(0, min(1, score))

	level := RiskHigh
	if score < 0.3 {
		level = RiskLow
	} else if score < 0.7 {
		level = RiskMedium
	}

	return RiskAssessment{
		RiskLevel:          level,
		Score:              score,
		IncomeStability:    incomeStability,
		SpendingVolatility: spendingVolatility,
		AverageSavingsRate: averageSavingsRate,
	}
}
