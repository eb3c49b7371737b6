package models

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalAchieved  GoalStatus = "ACHIEVED"
	GoalAbandoned GoalStatus = "ABANDONED"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalAchieved, GoalAbandoned:
		return true
	}
	return false
}

type Goal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Deadline      time.Time  `json:"deadline"`
	Category      string     `json:"category"`
	Status        GoalStatus `json:"status"`
	Strategies    []Strategy `json:"strategies"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Strategy is one advisor-suggested step toward a goal.
type Strategy struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// GoalSuggestion is an advisor-generated goal idea, not yet persisted.
type GoalSuggestion struct {
	GoalName        string  `json:"goalName"`
	TargetAmount    float64 `json:"targetAmount"`
	TimeframeMonths int     `json:"timeframeMonths"`
	Rationale       string  `json:"rationale"`
	Priority        string  `json:"priority"`
	Category        string  `json:"category"`
}
