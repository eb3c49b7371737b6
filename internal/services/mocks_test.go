package services

import (
	"context"
	"sync"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// ----- repository mocks -----

type mockProfiles struct {
	stored  *models.FinancialProfile
	creates int
}

func (m *mockProfiles) Get(userID string) (models.FinancialProfile, error) {
	if m.stored == nil {
		return models.FinancialProfile{}, pgx.ErrNoRows
	}
	return *m.stored, nil
}

func (m *mockProfiles) CreateIfAbsent(p models.FinancialProfile) (models.FinancialProfile, error) {
	m.creates++
	if m.stored == nil {
		p.ID = "profile-1"
		m.stored = &p
	}
	return *m.stored, nil
}

type mockBudgets struct{ budgets []models.Budget }

func (m *mockBudgets) Create(b models.Budget) (models.Budget, error) {
	if b.ID == "" {
		b.ID = "budget-1"
	}
	m.budgets = append(m.budgets, b)
	return b, nil
}

func (m *mockBudgets) GetByID(id, userID string) (models.Budget, error) {
	for _, b := range m.budgets {
		if b.ID == id && b.UserID == userID {
			return b, nil
		}
	}
	return models.Budget{}, pgx.ErrNoRows
}

func (m *mockBudgets) ListByUser(userID string) ([]models.Budget, error) {
	return m.budgets, nil
}

func (m *mockBudgets) ListRecent(userID string, n int) ([]models.Budget, error) {
	if len(m.budgets) > n {
		return m.budgets[:n], nil
	}
	return m.budgets, nil
}

type mockGoals struct{ goals []models.Goal }

func (m *mockGoals) Create(g models.Goal) (models.Goal, error) {
	if g.ID == "" {
		g.ID = "goal-1"
	}
	m.goals = append(m.goals, g)
	return g, nil
}

func (m *mockGoals) ListByUser(userID string) ([]models.Goal, error) { return m.goals, nil }

func (m *mockGoals) UpdateStatus(id, userID string, status models.GoalStatus) (models.Goal, error) {
	for i := range m.goals {
		if m.goals[i].ID == id {
			m.goals[i].Status = status
			return m.goals[i], nil
		}
	}
	return models.Goal{}, pgx.ErrNoRows
}

type mockChatMessages struct {
	mu   sync.Mutex
	msgs []models.ChatMessage
}

func (m *mockChatMessages) Create(msg models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *mockChatMessages) ListByUser(userID string) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ChatMessage(nil), m.msgs...), nil
}

// ----- advisor stub -----

type stubAdvisor struct {
	text    string
	err     error
	prompts []string
}

func (a *stubAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	a.prompts = append(a.prompts, prompt)
	if a.err != nil {
		return "", a.err
	}
	return a.text, nil
}
