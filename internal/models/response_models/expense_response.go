package response_models

import (
	"time"

	"tripify/internal/models/db_models"
)

type ExpenseTripResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Budget      float64              `json:"budget"`
	CreatedBy   string               `json:"created_by"`
	CreatedAt   int64                `json:"created_at"`
	Members     []TripMemberResponse `json:"members"`
}

type ExpenseResponse struct {
	ID           string            `json:"id"`
	TripID       string            `json:"trip_id"`
	PayerID      string            `json:"payer_id"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Description  string            `json:"description"`
	Category     string            `json:"category,omitempty"`
	Date         time.Time         `json:"date"`
	SplitDetails db_models.JSONMap `json:"split_details,omitempty"`
	Type         string            `json:"type"`
	CreatedAt    int64             `json:"created_at"`
}

type PayerTotal struct {
	PayerID string  `json:"payer_id"`
	Total   float64 `json:"total"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ExpenseTripSummaryResponse aggregates a trip's ledger. Settled rows are
// excluded from spend totals.
type ExpenseTripSummaryResponse struct {
	TripID      string          `json:"trip_id"`
	TotalSpent  float64         `json:"total_spent"`
	TotalIncome float64         `json:"total_income"`
	ByPayer     []PayerTotal    `json:"by_payer"`
	ByCategory  []CategoryTotal `json:"by_category"`
}
