package postgres

import (
	"context"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profilesRepo struct{ pool *pgxpool.Pool }

const profileCols = `id, user_id, personality_type, risk_tolerance, savings_rate, spending_habits, advice, created_at`

func (r *profilesRepo) Get(userID string) (models.FinancialProfile, error) {
	var p models.FinancialProfile
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+profileCols+` FROM financial_profiles WHERE user_id=$1`, userID,
	).Scan(&p.ID, &p.UserID, &p.PersonalityType, &p.RiskTolerance, &p.SavingsRate,
		&p.SpendingHabits, &p.Advice, &p.CreatedAt)
	return p, err
}

func (r *profilesRepo) CreateIfAbsent(p models.FinancialProfile) (models.FinancialProfile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	// Conditional insert: the user_id unique constraint makes concurrent
	// compute-if-absent callers converge on whichever row landed first.
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO financial_profiles(id, user_id, personality_type, risk_tolerance, savings_rate, spending_habits, advice)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (user_id) DO NOTHING`,
		p.ID, p.UserID, p.PersonalityType, p.RiskTolerance, p.SavingsRate, p.SpendingHabits, p.Advice,
	)
	if err != nil {
		return models.FinancialProfile{}, err
	}
	return r.Get(p.UserID)
}
