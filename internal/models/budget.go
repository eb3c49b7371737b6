package models

import "time"

// Budget is one user's financial activity for one calendar month.
// ActualSavings is always recomputed as TotalIncome - TotalExpenses; it is
// never edited independently.
type Budget struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Month         string    `json:"month"` // "YYYY-MM"
	TotalIncome   float64   `json:"total_income"`
	TotalExpenses float64   `json:"total_expenses"`
	SavingsGoal   float64   `json:"savings_goal"`
	ActualSavings float64   `json:"actual_savings"`
	Incomes       []Income  `json:"incomes,omitempty"`
	Expenses      []Expense `json:"expenses,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Income struct {
	ID       string    `json:"id"`
	BudgetID string    `json:"budget_id"`
	Source   string    `json:"source"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

type Expense struct {
	ID       string    `json:"id"`
	BudgetID string    `json:"budget_id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}
