package services

import (
	"context"
	"errors"
	"time"

	"github.com/finsight/finsight-backend/internal/models"
	repo "github.com/finsight/finsight-backend/internal/repository"
)

type BudgetService struct {
	budgets  repo.Budgets
	incomes  repo.Incomes
	expenses repo.Expenses
}

func NewBudgetService(b repo.Budgets, i repo.Incomes, e repo.Expenses) *BudgetService {
	return &BudgetService{budgets: b, incomes: i, expenses: e}
}

func (s *BudgetService) List(userID string) ([]models.Budget, error) {
	return s.budgets.ListByUser(userID)
}

func (s *BudgetService) Get(id, userID string) (models.Budget, error) {
	b, err := s.budgets.GetByID(id, userID)
	if err != nil {
		return models.Budget{}, notFound(err, ErrBudgetNotFound)
	}
	return b, nil
}

func (s *BudgetService) Create(userID, month string, savingsGoal float64) (models.Budget, error) {
	if month == "" {
		return models.Budget{}, errors.New("month is required")
	}
	if savingsGoal < 0 {
		return models.Budget{}, errors.New("savings goal must be >= 0")
	}
	return s.budgets.Create(models.Budget{UserID: userID, Month: month, SavingsGoal: savingsGoal})
}

// ----------------- incomes -----------------

func (s *BudgetService) ListIncomes(userID string) ([]models.Income, error) {
	return s.incomes.ListByUser(userID)
}

func (s *BudgetService) AddIncome(ctx context.Context, userID, budgetID, source string, amount float64, date time.Time) (models.Income, error) {
	if amount <= 0 {
		return models.Income{}, errors.New("amount must be > 0")
	}
	if date.IsZero() {
		date = time.Now()
	}
	in, err := s.incomes.Add(ctx, userID, models.Income{BudgetID: budgetID, Source: source, Amount: amount, Date: date})
	if err != nil {
		return models.Income{}, notFound(err, ErrBudgetNotFound)
	}
	return in, nil
}

func (s *BudgetService) UpdateIncome(ctx context.Context, userID, incomeID, source string, amount float64, date time.Time) (models.Income, error) {
	if amount <= 0 {
		return models.Income{}, errors.New("amount must be > 0")
	}
	if date.IsZero() {
		date = time.Now()
	}
	in, err := s.incomes.Update(ctx, userID, incomeID, source, amount, date)
	if err != nil {
		return models.Income{}, notFound(err, ErrIncomeNotFound)
	}
	return in, nil
}

func (s *BudgetService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	if err := s.incomes.Delete(ctx, userID, incomeID); err != nil {
		return notFound(err, ErrIncomeNotFound)
	}
	return nil
}

// ----------------- expenses -----------------

func (s *BudgetService) ListExpenses(userID string) ([]models.Expense, error) {
	return s.expenses.ListByUser(userID)
}

func (s *BudgetService) AddExpense(ctx context.Context, userID, budgetID, category string, amount float64, date time.Time) (models.Expense, error) {
	if amount <= 0 {
		return models.Expense{}, errors.New("amount must be > 0")
	}
	if category == "" {
		return models.Expense{}, errors.New("category is required")
	}
	if date.IsZero() {
		date = time.Now()
	}
	ex, err := s.expenses.Add(ctx, userID, models.Expense{BudgetID: budgetID, Category: category, Amount: amount, Date: date})
	if err != nil {
		return models.Expense{}, notFound(err, ErrBudgetNotFound)
	}
	return ex, nil
}

func (s *BudgetService) UpdateExpense(ctx context.Context, userID, expenseID, category string, amount float64, date time.Time) (models.Expense, error) {
	if amount <= 0 {
		return models.Expense{}, errors.New("amount must be > 0")
	}
	if date.IsZero() {
		date = time.Now()
	}
	ex, err := s.expenses.Update(ctx, userID, expenseID, category, amount, date)
	if err != nil {
		return models.Expense{}, notFound(err, ErrExpenseNotFound)
	}
	return ex, nil
}

func (s *BudgetService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.expenses.Delete(ctx, userID, expenseID); err != nil {
		return notFound(err, ErrExpenseNotFound)
	}
	return nil
}
