package postgres

import (
	"context"
	"time"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type incomesRepo struct{ pool *pgxpool.Pool }

func (r *incomesRepo) ListByUser(userID string) ([]models.Income, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT i.id, i.budget_id, i.source, i.amount, i.date
		   FROM incomes i JOIN budgets b ON b.id = i.budget_id
		  WHERE b.user_id=$1 ORDER BY i.date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Income
	for rows.Next() {
		var in models.Income
		if err := rows.Scan(&in.ID, &in.BudgetID, &in.Source, &in.Amount, &in.Date); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *incomesRepo) Add(ctx context.Context, userID string, in models.Income) (models.Income, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		// Ownership check doubles as the existence check.
		var budgetID string
		if err := tx.QueryRow(ctx,
			`SELECT id FROM budgets WHERE id=$1 AND user_id=$2`, in.BudgetID, userID,
		).Scan(&budgetID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx,
			`INSERT INTO incomes(id, budget_id, source, amount, date) VALUES($1,$2,$3,$4,$5)
			 RETURNING id, budget_id, source, amount, date`,
			in.ID, in.BudgetID, in.Source, in.Amount, in.Date,
		).Scan(&in.ID, &in.BudgetID, &in.Source, &in.Amount, &in.Date); err != nil {
			return err
		}
		return settleBudget(ctx, tx, in.BudgetID, `total_income = total_income + $2`, in.Amount)
	})
	if err != nil {
		return models.Income{}, err
	}
	return in, nil
}

func (r *incomesRepo) Update(ctx context.Context, userID, incomeID, source string, amount float64, date time.Time) (models.Income, error) {
	var in models.Income
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var prev float64
		var budgetID string
		if err := tx.QueryRow(ctx,
			`SELECT i.amount, i.budget_id
			   FROM incomes i JOIN budgets b ON b.id = i.budget_id
			  WHERE i.id=$1 AND b.user_id=$2`, incomeID, userID,
		).Scan(&prev, &budgetID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx,
			`UPDATE incomes SET source=$2, amount=$3, date=$4 WHERE id=$1
			 RETURNING id, budget_id, source, amount, date`,
			incomeID, source, amount, date,
		).Scan(&in.ID, &in.BudgetID, &in.Source, &in.Amount, &in.Date); err != nil {
			return err
		}
		return settleBudget(ctx, tx, budgetID, `total_income = total_income + $2`, amount-prev)
	})
	if err != nil {
		return models.Income{}, err
	}
	return in, nil
}

func (r *incomesRepo) Delete(ctx context.Context, userID, incomeID string) error {
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var amount float64
		var budgetID string
		if err := tx.QueryRow(ctx,
			`SELECT i.amount, i.budget_id
			   FROM incomes i JOIN budgets b ON b.id = i.budget_id
			  WHERE i.id=$1 AND b.user_id=$2`, incomeID, userID,
		).Scan(&amount, &budgetID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM incomes WHERE id=$1`, incomeID); err != nil {
			return err
		}
		return settleBudget(ctx, tx, budgetID, `total_income = total_income - $2`, amount)
	})
}

// settleBudget applies a rolling-total delta and recomputes actual_savings
// from the updated totals in the same transaction. The pairing of entry
// mutation and total update is the storage-layer invariant.
func settleBudget(ctx context.Context, tx pgx.Tx, budgetID, totalExpr string, delta float64) error {
	if _, err := tx.Exec(ctx,
		`UPDATE budgets SET `+totalExpr+`, updated_at=now() WHERE id=$1`, budgetID, delta); err != nil {
		return err
	}
	_, err := tx.Exec(ctx,
		`UPDATE budgets SET actual_savings = total_income - total_expenses WHERE id=$1`, budgetID)
	return err
}

func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
