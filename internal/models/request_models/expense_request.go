package request_models

import (
	"time"

	"github.com/google/uuid"
	"tripify/internal/models/db_models"
)

type CreateExpenseTripRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
}

type CreateExpenseRequest struct {
	TripID       uuid.UUID          `json:"trip_id" binding:"required"`
	Amount       float64            `json:"amount" binding:"required,gt=0"`
	Currency     string             `json:"currency"`
	Description  string             `json:"description" binding:"required"`
	Category     string             `json:"category"`
	Date         time.Time          `json:"date" binding:"required"`
	SplitDetails db_models.JSONMap  `json:"split_details"`
	Type         string             `json:"type" binding:"omitempty,oneof=expense income settled"`
}

type UpdateExpenseRequest struct {
	Amount       *float64           `json:"amount,omitempty"`
	Currency     *string            `json:"currency,omitempty"`
	Description  *string            `json:"description,omitempty"`
	Category     *string            `json:"category,omitempty"`
	Date         *time.Time         `json:"date,omitempty"`
	SplitDetails *db_models.JSONMap `json:"split_details,omitempty"`
	Type         *string            `json:"type,omitempty" binding:"omitempty,oneof=expense income settled"`
}
