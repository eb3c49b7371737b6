package services

import (
	"github.com/finsight/finsight-backend/internal/finance"
	"github.com/finsight/finsight-backend/internal/metrics"
	repo "github.com/finsight/finsight-backend/internal/repository"
)

type RiskService struct {
	budgets  repo.Budgets
	profiles repo.Profiles
}

func NewRiskService(b repo.Budgets, p repo.Profiles) *RiskService {
	return &RiskService{budgets: b, profiles: p}
}

// Assess scores the user's credit risk from their full budget history. A
// stored financial profile is a precondition: without one the caller gets
// ErrProfileNotFound and must complete profile setup first.
func (s *RiskService) Assess(userID string) (finance.RiskAssessment, error) {
	profile, err := s.profiles.Get(userID)
	if err != nil {
		return finance.RiskAssessment{}, notFound(err, ErrProfileNotFound)
	}
	budgets, err := s.budgets.ListByUser(userID)
	if err != nil {
		return finance.RiskAssessment{}, err
	}

	a := finance.AssessRisk(budgets, profile)
	metrics.RiskAssessments.Inc()
	return a, nil
}
