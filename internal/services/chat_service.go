package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finsight/finsight-backend/internal/advisor"
	"github.com/finsight/finsight-backend/internal/metrics"
	"github.com/finsight/finsight-backend/internal/models"
	repo "github.com/finsight/finsight-backend/internal/repository"
	"github.com/finsight/finsight-backend/internal/worker"
)

type ChatService struct {
	messages repo.ChatMessages
	budgets  repo.Budgets
	adv      advisor.Advisor
	wp       *worker.Pool
}

func NewChatService(m repo.ChatMessages, b repo.Budgets, adv advisor.Advisor, wp *worker.Pool) *ChatService {
	return &ChatService{messages: m, budgets: b, adv: adv, wp: wp}
}

// Query forwards the user's question plus a summary of their budget history
// to the advisor and returns the response text verbatim. The exchange is
// persisted off the request path.
func (s *ChatService) Query(ctx context.Context, userID, query string) (string, error) {
	budgets, err := s.budgets.ListByUser(userID)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, b := range budgets {
		lines = append(lines, fmt.Sprintf("Month: %s, Income: ₹%.0f, Expenses: ₹%.0f, Savings Goal: ₹%.0f, Actual Savings: ₹%.0f.",
			b.Month, b.TotalIncome, b.TotalExpenses, b.SavingsGoal, b.ActualSavings))
	}
	summary := strings.Join(lines, " ")

	prompt := fmt.Sprintf(`You are a financial guidance AI.
User financial summary: %s
Rules:
1. Provide detailed suggestion for user's query but keep content short & informative.
2. Do NOT give direct buy/sell advice.
3. If asked about best stocks or sectors:
  - List examples of well-performing stocks from dynamic list.
4. Add a disclaimer:
  "Please note that I do not directly recommend investing in any specific stocks. Conduct your own study and research before making any investment decisions."

User query: %s
`, summary, query)

	response, err := s.adv.Generate(ctx, prompt)
	if err != nil {
		metrics.AdvisorRequests.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.AdvisorRequests.WithLabelValues("ok").Inc()

	msg := models.ChatMessage{UserID: userID, Message: query, Response: response}
	s.wp.Submit(func() {
		if err := s.messages.Create(msg); err != nil {
			slog.Error("persist chat message", "user_id", msg.UserID, "err", err)
		}
	})

	return response, nil
}

func (s *ChatService) History(userID string) ([]models.ChatMessage, error) {
	return s.messages.ListByUser(userID)
}
