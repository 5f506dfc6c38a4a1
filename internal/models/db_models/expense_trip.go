package db_models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseTrip is an independent namespace from Trip: there is no join code,
// and only the creator sees the trip in listings.
type ExpenseTrip struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string
	Budget      float64   `gorm:"default:0"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`

	Members  []ExpenseTripMember `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Expenses []Expense           `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

type ExpenseTripMember struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_expense_trip_user"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_expense_trip_user"`
	Role   TripRole  `gorm:"size:20;default:member"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Expense struct {
	BaseModel
	TripID       uuid.UUID `gorm:"type:uuid;not null"`
	PayerID      uuid.UUID `gorm:"type:uuid;not null"`
	Amount       float64   `gorm:"type:numeric(10,2);not null"`
	Currency     string    `gorm:"size:3;default:USD"`
	Description  string    `gorm:"not null"`
	Category     string
	Date         time.Time `gorm:"not null"`
	SplitDetails JSONMap
	Type         string `gorm:"default:expense"` // expense, income, settled
}
