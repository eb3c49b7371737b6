package postgres

import (
	repo "github.com/finsight/finsight-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users        repo.Users
	Budgets      repo.Budgets
	Incomes      repo.Incomes
	Expenses     repo.Expenses
	Profiles     repo.Profiles
	Goals        repo.Goals
	ChatMessages repo.ChatMessages
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:        &usersRepo{pool},
		Budgets:      &budgetsRepo{pool},
		Incomes:      &incomesRepo{pool},
		Expenses:     &expensesRepo{pool},
		Profiles:     &profilesRepo{pool},
		Goals:        &goalsRepo{pool},
		ChatMessages: &chatMessagesRepo{pool},
	}
}
