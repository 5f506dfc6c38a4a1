package db_models

type User struct {
	BaseModel
	Email         string `gorm:"unique;not null"`
	PasswordHash  string `gorm:"not null"`
	Name          string `gorm:"not null"`
	ProfilePicURL string
}
