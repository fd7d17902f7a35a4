package models

import "time"

// User represents a registered shopper.
type User struct {
	ID       string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name     string    `json:"name" validate:"required,min=1,max=100"`
	Email    string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string    `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	CartData Cart      `json:"-" gorm:"type:text"`
	Date     time.Time `json:"date"`
}
