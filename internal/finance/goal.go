package finance

import "math"

// GoalProjection is the feasibility picture for one savings goal. Time to
// goal is +Inf when the user has no savings capacity and an amount remains;
// infinities are valid outputs, not errors.
type GoalProjection struct {
	RequiredMonthlyContribution float64
	MaxMonthlySavings           float64
	IsFeasible                  bool
	TimeToGoalMonths            float64
	TimeToGoalYears             float64
}

// ProjectGoal computes the monthly contribution a goal requires against the
// user's sustainable savings capacity. timeframeMonths must be > 0; callers
// validate before calling.
func ProjectGoal(targetAmount float64, timeframeMonths int, currentSavings, avgIncome, savingsRatePct float64) GoalProjection {
	maxMonthlySavings := avgIncome * (savingsRatePct / 100)
	remaining := math.Max(0, targetAmount-currentSavings)
	requiredMonthly := remaining / float64(timeframeMonths)

	isFeasible := requiredMonthly <= maxMonthlySavings || remaining == 0

	var timeToGoalMonths float64
	switch {
	case maxMonthlySavings > 0:
		timeToGoalMonths = remaining / maxMonthlySavings
	case remaining > 0:
		timeToGoalMonths = math.Inf(1)
	}

	timeToGoalYears := math.Inf(1)
	if !math.IsInf(timeToGoalMonths, 1) {
		timeToGoalYears = timeToGoalMonths / 12
	}

	return GoalProjection{
		RequiredMonthlyContribution: requiredMonthly,
		MaxMonthlySavings:           maxMonthlySavings,
		IsFeasible:                  isFeasible,
		TimeToGoalMonths:            timeToGoalMonths,
		TimeToGoalYears:             timeToGoalYears,
	}
}
