package postgres

import (
	"context"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type budgetsRepo struct{ pool *pgxpool.Pool }

const budgetCols = `id, user_id, month, total_income, total_expenses, savings_goal, actual_savings, created_at, updated_at`

func scanBudget(row interface{ Scan(...any) error }) (models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.Month, &b.TotalIncome, &b.TotalExpenses,
		&b.SavingsGoal, &b.ActualSavings, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *budgetsRepo) Create(b models.Budget) (models.Budget, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return scanBudget(r.pool.QueryRow(context.Background(),
		`INSERT INTO budgets(id, user_id, month, total_income, total_expenses, savings_goal, actual_savings)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+budgetCols,
		b.ID, b.UserID, b.Month, b.TotalIncome, b.TotalExpenses, b.SavingsGoal, b.ActualSavings,
	))
}

func (r *budgetsRepo) GetByID(id, userID string) (models.Budget, error) {
	b, err := scanBudget(r.pool.QueryRow(context.Background(),
		`SELECT `+budgetCols+` FROM budgets WHERE id=$1 AND user_id=$2`, id, userID))
	if err != nil {
		return models.Budget{}, err
	}
	budgets := []models.Budget{b}
	if err := r.attachEntries(budgets); err != nil {
		return models.Budget{}, err
	}
	return budgets[0], nil
}

func (r *budgetsRepo) ListByUser(userID string) ([]models.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+budgetCols+` FROM budgets WHERE user_id=$1 ORDER BY month`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachEntries(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *budgetsRepo) ListRecent(userID string, n int) ([]models.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+budgetCols+` FROM budgets WHERE user_id=$1 ORDER BY month DESC LIMIT $2`, userID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// attachEntries loads the income and expense rows for the given budgets in
// two queries and distributes them by budget id.
func (r *budgetsRepo) attachEntries(budgets []models.Budget) error {
	if len(budgets) == 0 {
		return nil
	}
	ids := make([]string, len(budgets))
	byID := make(map[string]*models.Budget, len(budgets))
	for i := range budgets {
		ids[i] = budgets[i].ID
		byID[budgets[i].ID] = &budgets[i]
	}

	rows, err := r.pool.Query(context.Background(),
		`SELECT id, budget_id, source, amount, date FROM incomes WHERE budget_id = ANY($1) ORDER BY date`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.BudgetID, &in.Source, &in.Amount, &in.Date); err != nil {
			rows.Close()
			return err
		}
		b := byID[in.BudgetID]
		b.Incomes = append(b.Incomes, in)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(context.Background(),
		`SELECT id, budget_id, category, amount, date FROM expenses WHERE budget_id = ANY($1) ORDER BY date`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var ex models.Expense
		if err := rows.Scan(&ex.ID, &ex.BudgetID, &ex.Category, &ex.Amount, &ex.Date); err != nil {
			return err
		}
		b := byID[ex.BudgetID]
		b.Expenses = append(b.Expenses, ex)
	}
	return rows.Err()
}
