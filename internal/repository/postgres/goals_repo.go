package postgres

import (
	"context"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type goalsRepo struct{ pool *pgxpool.Pool }

const goalCols = `id, user_id, title, target_amount, current_amount, deadline, category, status, strategies, created_at`

func (r *goalsRepo) Create(g models.Goal) (models.Goal, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO goals(id, user_id, title, target_amount, current_amount, deadline, category, status, strategies)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING `+goalCols,
		g.ID, g.UserID, g.Title, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Category, g.Status, g.Strategies,
	).Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &g.Deadline,
		&g.Category, &g.Status, &g.Strategies, &g.CreatedAt)
	return g, err
}

func (r *goalsRepo) ListByUser(userID string) ([]models.Goal, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+goalCols+` FROM goals WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount,
			&g.Deadline, &g.Category, &g.Status, &g.Strategies, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *goalsRepo) UpdateStatus(id, userID string, status models.GoalStatus) (models.Goal, error) {
	var g models.Goal
	err := r.pool.QueryRow(context.Background(),
		`UPDATE goals SET status=$3 WHERE id=$1 AND user_id=$2 RETURNING `+goalCols,
		id, userID, status,
	).Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &g.Deadline,
		&g.Category, &g.Status, &g.Strategies, &g.CreatedAt)
	return g, err
}
