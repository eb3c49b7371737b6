package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("financial profile not found")
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrIncomeNotFound     = errors.New("income not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrUserNotFound       = errors.New("user not found")
)

// notFound maps the driver's empty-result error onto a domain sentinel so
// handlers can translate it to a 404 without knowing about pgx.
func notFound(err, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}
