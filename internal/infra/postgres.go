package infra

import (
	"database/sql"
	"errors"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tripify/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	// The sql.DB is opened through lib/pq rather than gorm's default pgx
	// stack so constraint violations surface as *pq.Error and the join-code
	// retry loop can inspect the SQLSTATE.
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("Error opening database: %v", err)
		log.Fatal("Error connecting to database")
	}

	connectionPool, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.TripMember{},
		&db_models.ExpenseTrip{},
		&db_models.ExpenseTripMember{},
		&db_models.Expense{},
		&db_models.ItineraryTrip{},
		&db_models.ItineraryTripMember{},
		&db_models.ItineraryDay{},
		&db_models.ItineraryActivity{},
		&db_models.ItineraryPackingItem{},
		&db_models.Media{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// IsUniqueViolation reports whether err is a unique-constraint rejection,
// either as gorm's translated sentinel or as the raw pq SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
