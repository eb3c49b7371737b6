package repository

import (
	"context"
	"time"

	"github.com/finsight/finsight-backend/internal/models"
)

type Users interface {
	Create(name, email, passwordHash, role string) (models.User, error)
	GetByID(id string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	List() ([]models.User, error)
	Update(u models.User) error
}

type Budgets interface {
	Create(b models.Budget) (models.Budget, error)
	// GetByID loads one budget with its income and expense entries; the
	// budget must belong to userID.
	GetByID(id, userID string) (models.Budget, error)
	// ListByUser returns all budgets with nested entries, ordered by month.
	ListByUser(userID string) ([]models.Budget, error)
	// ListRecent returns up to n budgets without entries, newest month first.
	ListRecent(userID string, n int) ([]models.Budget, error)
}

// Incomes and Expenses mutate an entry and the parent budget's rolling
// totals inside a single database transaction, so the
// actual_savings = total_income - total_expenses invariant holds after every
// call. Ownership is enforced by joining through the parent budget.
type Incomes interface {
	ListByUser(userID string) ([]models.Income, error)
	Add(ctx context.Context, userID string, in models.Income) (models.Income, error)
	Update(ctx context.Context, userID, incomeID, source string, amount float64, date time.Time) (models.Income, error)
	Delete(ctx context.Context, userID, incomeID string) error
}

type Expenses interface {
	ListByUser(userID string) ([]models.Expense, error)
	Add(ctx context.Context, userID string, ex models.Expense) (models.Expense, error)
	Update(ctx context.Context, userID, expenseID, category string, amount float64, date time.Time) (models.Expense, error)
	Delete(ctx context.Context, userID, expenseID string) error
}

type Profiles interface {
	Get(userID string) (models.FinancialProfile, error)
	// CreateIfAbsent inserts the profile unless one already exists for the
	// user, then returns whichever row won. Concurrent callers converge on a
	// single profile.
	CreateIfAbsent(p models.FinancialProfile) (models.FinancialProfile, error)
}

type Goals interface {
	Create(g models.Goal) (models.Goal, error)
	ListByUser(userID string) ([]models.Goal, error)
	UpdateStatus(id, userID string, status models.GoalStatus) (models.Goal, error)
}

type ChatMessages interface {
	Create(m models.ChatMessage) error
	ListByUser(userID string) ([]models.ChatMessage, error)
}
