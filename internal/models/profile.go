package models

import "time"

type PersonalityType string

const (
	PersonalityConservative PersonalityType = "CONSERVATIVE"
	PersonalityBalanced     PersonalityType = "BALANCED"
	PersonalityAggressive   PersonalityType = "AGGRESSIVE"
	PersonalitySpender      PersonalityType = "SPENDER"
	PersonalitySaver        PersonalityType = "SAVER"
)

// FinancialProfile is derived once from a user's budget history and cached;
// it is only recomputed when absent.
type FinancialProfile struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	PersonalityType PersonalityType    `json:"personality_type"`
	RiskTolerance   float64            `json:"risk_tolerance"` // [0,1]
	SavingsRate     float64            `json:"savings_rate"`   // percent
	SpendingHabits  map[string]float64 `json:"spending_habits"`
	Advice          string             `json:"advice"`
	CreatedAt       time.Time          `json:"created_at"`
}
