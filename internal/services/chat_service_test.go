package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/finsight/finsight-backend/internal/worker"
)

func TestChatQuery(t *testing.T) {
	messages := &mockChatMessages{}
	budgets := &mockBudgets{budgets: []models.Budget{
		{Month: "2025-01", TotalIncome: 5000, TotalExpenses: 3000, SavingsGoal: 1500, ActualSavings: 2000},
	}}
	adv := &stubAdvisor{text: "Consider building an emergency fund first."}
	wp := worker.NewPool(1)
	svc := NewChatService(messages, budgets, adv, wp)

	resp, err := svc.Query(context.Background(), "u1", "where should I invest?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != adv.text {
		t.Errorf("response = %q", resp)
	}

	// The prompt carries the financial summary and the raw query.
	if len(adv.prompts) != 1 {
		t.Fatalf("prompts = %d, want 1", len(adv.prompts))
	}
	prompt := adv.prompts[0]
	if !strings.Contains(prompt, "Month: 2025-01") || !strings.Contains(prompt, "where should I invest?") {
		t.Errorf("prompt missing context:\n%s", prompt)
	}

	// Persistence is async; drain the pool before asserting.
	wp.Stop()
	saved, _ := messages.ListByUser("u1")
	if len(saved) != 1 {
		t.Fatalf("messages persisted = %d, want 1", len(saved))
	}
	if saved[0].Message != "where should I invest?" || saved[0].Response != adv.text {
		t.Errorf("saved = %+v", saved[0])
	}
}

func TestChatQueryAdvisorFailure(t *testing.T) {
	wp := worker.NewPool(1)
	defer wp.Stop()
	messages := &mockChatMessages{}
	svc := NewChatService(messages, &mockBudgets{}, &stubAdvisor{err: errors.New("quota exceeded")}, wp)

	if _, err := svc.Query(context.Background(), "u1", "hi"); err == nil {
		t.Fatal("expected error when advisor is down")
	}
	if saved, _ := messages.ListByUser("u1"); len(saved) != 0 {
		t.Errorf("failed exchange must not be persisted, got %d", len(saved))
	}
}
