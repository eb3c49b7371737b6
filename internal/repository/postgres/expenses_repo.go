package postgres

import (
	"context"
	"time"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expensesRepo struct{ pool *pgxpool.Pool }

func (r *expensesRepo) ListByUser(userID string) ([]models.Expense, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT e.id, e.budget_id, e.category, e.amount, e.date
		   FROM expenses e JOIN budgets b ON b.id = e.budget_id
		  WHERE b.user_id=$1 ORDER BY e.date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Expense
	for rows.Next() {
		var ex models.Expense
		if err := rows.Scan(&ex.ID, &ex.BudgetID, &ex.Category, &ex.Amount, &ex.Date); err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

func (r *expensesRepo) Add(ctx context.Context, userID string, ex models.Expense) (models.Expense, error) {
	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var budgetID string
		if err := tx.QueryRow(ctx,
			`SELECT id FROM budgets WHERE id=$1 AND user_id=$2`, ex.BudgetID, userID,
		).Scan(&budgetID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx,
			`INSERT INTO expenses(id, budget_id, category, amount, date) VALUES($1,$2,$3,$4,$5)
			 RETURNING id, budget_id, category, amount, date`,
			ex.ID, ex.BudgetID, ex.Category, ex.Amount, ex.Date,
		).Scan(&ex.ID, &ex.BudgetID, &ex.Category, &ex.Amount, &ex.Date); err != nil {
			return err
		}
		return settleBudget(ctx, tx, ex.BudgetID, `total_expenses = total_expenses + $2`, ex.Amount)
	})
	if err != nil {
		return models.Expense{}, err
	}
	return ex, nil
}

func (r *expensesRepo) Update(ctx context.Context, userID, expenseID, category string, amount float64, date time.Time) (models.Expense, error) {
	var ex models.Expense
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var prev float64
		var budgetID string
		if err := tx.QueryRow(ctx,
			`SELECT e.amount, e.budget_id
			   FROM expenses e JOIN budgets b ON b.id = e.budget_id
			  WHERE e.id=$1 AND b.user_id=$2`, expenseID, userID,
		).Scan(&prev, &budgetID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx,
			`UPDATE expenses SET category=$2, amount=$3, date=$4 WHERE id=$1
			 RETURNING id, budget_id, category, amount, date`,
			expenseID, category, amount, date,
		).Scan(&ex.ID, &ex.BudgetID, &ex.Category, &ex.Amount, &ex.Date); err != nil {
			return err
		}
		return settleBudget(ctx, tx, budgetID, `total_expenses = total_expenses + $2`, amount-prev)
	})
	if err != nil {
		return models.Expense{}, err
	}
	return ex, nil
}

func (r *expensesRepo) Delete(ctx context.Context, userID, expenseID string) error {
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var amount float64
		var budgetID string
		if err := tx.QueryRow(ctx,
			`SELECT e.amount, e.budget_id
			   FROM expenses e JOIN budgets b ON b.id = e.budget_id
			  WHERE e.id=$1 AND b.user_id=$2`, expenseID, userID,
		).Scan(&amount, &budgetID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, expenseID); err != nil {
			return err
		}
		return settleBudget(ctx, tx, budgetID, `total_expenses = total_expenses - $2`, amount)
	})
}
