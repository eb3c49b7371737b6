package services

import (
	"errors"

	"github.com/finsight/finsight-backend/internal/finance"
	"github.com/finsight/finsight-backend/internal/metrics"
	"github.com/finsight/finsight-backend/internal/models"
	repo "github.com/finsight/finsight-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

type ProfileService struct {
	profiles repo.Profiles
	budgets  repo.Budgets
}

func NewProfileService(p repo.Profiles, b repo.Budgets) *ProfileService {
	return &ProfileService{profiles: p, budgets: b}
}

// Get returns the stored profile without computing one.
func (s *ProfileService) Get(userID string) (models.FinancialProfile, error) {
	p, err := s.profiles.Get(userID)
	if err != nil {
		return models.FinancialProfile{}, notFound(err, ErrProfileNotFound)
	}
	return p, nil
}

// GetOrCreate returns the stored profile, or classifies the user from their
// budget history and persists the result. The insert is conditional on the
// user_id uniqueness constraint, so two concurrent calls both return the
// same winning row.
func (s *ProfileService) GetOrCreate(userID string) (models.FinancialProfile, error) {
	p, err := s.profiles.Get(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.FinancialProfile{}, err
	}

	budgets, err := s.budgets.ListByUser(userID)
	if err != nil {
		return models.FinancialProfile{}, err
	}

	agg := finance.Aggregate(budgets)
	c := finance.Classify(agg.TotalIncome, agg.TotalExpenses, agg.TotalSavings)

	p, err = s.profiles.CreateIfAbsent(models.FinancialProfile{
		UserID:          userID,
		PersonalityType: c.PersonalityType,
		RiskTolerance:   c.RiskTolerance,
		SavingsRate:     c.SavingsRate,
		SpendingHabits:  agg.CategoryExpenses,
		Advice:          c.Advice,
	})
	if err != nil {
		return models.FinancialProfile{}, err
	}
	metrics.ProfilesComputed.Inc()
	return p, nil
}
