package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/advisor"
	"github.com/finsight/finsight-backend/internal/finance"
	"github.com/finsight/finsight-backend/internal/metrics"
	"github.com/finsight/finsight-backend/internal/models"
	repo "github.com/finsight/finsight-backend/internal/repository"
)

type GoalService struct {
	goals    repo.Goals
	budgets  repo.Budgets
	profiles repo.Profiles
	adv      advisor.Advisor
}

func NewGoalService(g repo.Goals, b repo.Budgets, p repo.Profiles, adv advisor.Advisor) *GoalService {
	return &GoalService{goals: g, budgets: b, profiles: p, adv: adv}
}

// recentMonths is how much budget history the advisor prompts carry.
const recentMonths = 6

// GoalPlan is the full planning response: the persisted goal, the
// feasibility projection, and advisor strategies. Projection figures are
// pre-formatted strings so an infinite time-to-goal serializes as
// "Infinity" instead of breaking JSON encoding.
type GoalPlan struct {
	Goal            models.Goal       `json:"goal"`
	GoalName        string            `json:"goal_name"`
	TargetAmount    float64           `json:"target_amount"`
	TimeframeMonths int               `json:"timeframe_months"`
	CurrentSavings  float64           `json:"current_savings"`
	Feasibility     Feasibility       `json:"feasibility"`
	TimeToGoal      TimeToGoal        `json:"time_to_goal"`
	Strategies      []models.Strategy `json:"strategies"`
}

type Feasibility struct {
	IsFeasible                  bool   `json:"is_feasible"`
	RequiredMonthlyContribution string `json:"required_monthly_contribution"`
	MaxMonthlySavings           string `json:"max_monthly_savings"`
	AverageMonthlyIncome        string `json:"average_monthly_income"`
}

type TimeToGoal struct {
	Months string `json:"months"`
	Years  string `json:"years"`
}

var fallbackStrategies = []models.Strategy{
	{Type: "budgeting", Suggestion: "Optimize Budget", Impact: "Increase savings capacity"},
	{Type: "tracking", Suggestion: "Track Progress", Impact: "Maintain motivation"},
	{Type: "automation", Suggestion: "Automate Savings", Impact: "Ensure consistency"},
	{Type: "education", Suggestion: "Financial Education", Impact: "Better decision making"},
}

// Plan validates the goal, projects its feasibility against the user's
// savings capacity, asks the advisor for strategies, and persists the goal.
// timeframeMonths > 0 is a hard precondition of the projection.
func (s *GoalService) Plan(ctx context.Context, userID, goalName string, targetAmount float64, timeframeMonths int, currentSavings float64) (GoalPlan, error) {
	if goalName == "" {
		return GoalPlan{}, errors.New("goal name is required")
	}
	if targetAmount <= 0 || timeframeMonths <= 0 || currentSavings < 0 {
		return GoalPlan{}, errors.New("invalid input values")
	}

	profile, err := s.profiles.Get(userID)
	if err != nil {
		return GoalPlan{}, notFound(err, ErrProfileNotFound)
	}

	budgets, err := s.budgets.ListRecent(userID, recentMonths)
	if err != nil {
		return GoalPlan{}, err
	}

	var avgIncome, avgExpense float64
	if len(budgets) > 0 {
		for _, b := range budgets {
			avgIncome += b.TotalIncome
			avgExpense += b.TotalExpenses
		}
		avgIncome /= float64(len(budgets))
		avgExpense /= float64(len(budgets))
	}

	proj := finance.ProjectGoal(targetAmount, timeframeMonths, currentSavings, avgIncome, profile.SavingsRate)

	strategies := s.strategiesFor(ctx, profile, budgets, goalName, targetAmount, timeframeMonths, currentSavings, avgIncome, avgExpense, proj)

	goal, err := s.goals.Create(models.Goal{
		UserID:        userID,
		Title:         goalName,
		TargetAmount:  targetAmount,
		CurrentAmount: currentSavings,
		// Approximate: months of 30 days.
		Deadline:   time.Now().Add(time.Duration(timeframeMonths) * 30 * 24 * time.Hour),
		Category:   "OTHER",
		Status:     models.GoalActive,
		Strategies: strategies,
	})
	if err != nil {
		return GoalPlan{}, err
	}
	metrics.GoalsCreated.Inc()

	return GoalPlan{
		Goal:            goal,
		GoalName:        goalName,
		TargetAmount:    targetAmount,
		TimeframeMonths: timeframeMonths,
		CurrentSavings:  currentSavings,
		Feasibility: Feasibility{
			IsFeasible:                  proj.IsFeasible,
			RequiredMonthlyContribution: formatFixed(proj.RequiredMonthlyContribution, 0),
			MaxMonthlySavings:           formatFixed(proj.MaxMonthlySavings, 0),
			AverageMonthlyIncome:        formatFixed(avgIncome, 0),
		},
		TimeToGoal: TimeToGoal{
			Months: formatFixed(proj.TimeToGoalMonths, 1),
			Years:  formatFixed(proj.TimeToGoalYears, 1),
		},
		Strategies: strategies,
	}, nil
}

func (s *GoalService) strategiesFor(ctx context.Context, profile models.FinancialProfile, budgets []models.Budget, goalName string, target float64, months int, savings, avgIncome, avgExpense float64, proj finance.GoalProjection) []models.Strategy {
	prompt := fmt.Sprintf(`Generate 4 personalized strategies for this user to achieve their financial goal. Make them specific, actionable, and tailored to their personality. Analyze their budget history to suggest optimizations where possible.
Goal: %s
Target: ₹%.0f
Timeframe: %d months
Current Savings: ₹%.0f
Required Monthly: ₹%s
Feasible: %t
Avg Income: ₹%.0f
Avg Expenses: ₹%.0f
Budget History: %s
Personality: %s
Risk Tolerance: %.2f

Output ONLY JSON array:
[
  {
    "type": "strategy_type",
    "suggestion": "Short title",
    "impact": "Expected benefit"
  }
]`,
		goalName, target, months, savings, formatFixed(proj.RequiredMonthlyContribution, 0),
		proj.IsFeasible, avgIncome, avgExpense, budgetSummary(budgets),
		profile.PersonalityType, profile.RiskTolerance)

	text, err := s.adv.Generate(ctx, prompt)
	if err != nil {
		metrics.AdvisorRequests.WithLabelValues("error").Inc()
		slog.Warn("advisor strategies unavailable, using fallback", "err", err)
		return fallbackStrategies
	}
	metrics.AdvisorRequests.WithLabelValues("ok").Inc()

	var strategies []models.Strategy
	if err := advisor.ExtractJSONArray(text, &strategies); err != nil || len(strategies) == 0 {
		return fallbackStrategies
	}
	return strategies
}

// Suggestions asks the advisor for five goal ideas grounded in the user's
// profile and recent history. An unparseable response yields an empty list,
// never an error.
func (s *GoalService) Suggestions(ctx context.Context, userID string) ([]models.GoalSuggestion, error) {
	profile, err := s.profiles.Get(userID)
	if err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	budgets, err := s.budgets.ListRecent(userID, recentMonths)
	if err != nil {
		return nil, err
	}

	var avgIncome, avgSavings float64
	for _, b := range budgets {
		avgIncome += b.TotalIncome
		avgSavings += b.ActualSavings
	}
	n := math.Max(float64(len(budgets)), 1)
	avgIncome /= n
	avgSavings /= n
	var calculatedRate float64
	if avgIncome > 0 {
		calculatedRate = avgSavings / avgIncome * 100
	}

	prompt := fmt.Sprintf(`You are an expert financial advisor. Generate 5 personalized, realistic financial goals for this user based on their profile and budget history. Goals must be dynamic and tailored to their specific situation - no generic suggestions.

User Profile:
- Personality Type: %s
- Savings Rate: %.1f%% (calculated from data: %.1f%%)
- Risk Tolerance: %.2f (0-1 scale)
- Spending Habits: %v

Budget History (last %d months):
%s

Average Monthly Income: ₹%.0f
Average Monthly Savings: ₹%.0f

Requirements:
1. Generate exactly 5 unique goals
2. Each goal must be achievable based on their income and savings rate
3. Consider personality: Conservative = safety-focused, Spender = discipline-building, Saver = growth-oriented
4. Include Indian context (rupees, common goals like emergency fund, home down payment, retirement)
5. Timeframes: 6-60 months, realistic for their finances
6. Target amounts: Realistic based on income (e.g., 3-12 months income for emergency fund)

Output ONLY valid JSON array:
[
  {
    "goalName": "Specific goal name",
    "targetAmount": number,
    "timeframeMonths": number,
    "rationale": "2-3 sentences explaining why this goal fits their profile and finances",
    "priority": "high|medium|low",
    "category": "emergency|lifestyle|investment|debt|wealth"
  }
]`,
		profile.PersonalityType, profile.SavingsRate, calculatedRate, profile.RiskTolerance,
		profile.SpendingHabits, recentMonths, budgetSummary(budgets), avgIncome, avgSavings)

	text, err := s.adv.Generate(ctx, prompt)
	if err != nil {
		metrics.AdvisorRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.AdvisorRequests.WithLabelValues("ok").Inc()

	suggestions := []models.GoalSuggestion{}
	if err := advisor.ExtractJSONArray(text, &suggestions); err != nil {
		return []models.GoalSuggestion{}, nil
	}
	return suggestions, nil
}

func (s *GoalService) List(userID string) ([]models.Goal, error) {
	return s.goals.ListByUser(userID)
}

func (s *GoalService) UpdateStatus(id, userID string, status models.GoalStatus) (models.Goal, error) {
	if !status.Valid() {
		return models.Goal{}, errors.New("invalid status, must be ACTIVE, ACHIEVED, or ABANDONED")
	}
	g, err := s.goals.UpdateStatus(id, userID, status)
	if err != nil {
		return models.Goal{}, notFound(err, ErrGoalNotFound)
	}
	return g, nil
}

func budgetSummary(budgets []models.Budget) string {
	lines := make([]string, 0, len(budgets))
	for _, b := range budgets {
		lines = append(lines, fmt.Sprintf("Month: %s, Income: ₹%.0f, Expenses: ₹%.0f, Savings: ₹%.0f",
			b.Month, b.TotalIncome, b.TotalExpenses, b.ActualSavings))
	}
	return strings.Join(lines, "\n")
}

// formatFixed renders a value with fixed decimals, with infinities spelled
// out so they survive JSON encoding.
func formatFixed(v float64, prec int) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
