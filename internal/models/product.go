package models

import "time"

// Product represents a catalog item. The id is a sequential integer assigned
// server-side on creation, never supplied by the client.
type Product struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" validate:"required,min=1,max=200"`
	Image     string    `json:"image" validate:"omitempty,max=500"`
	Category  string    `json:"category" validate:"required,max=100"`
	NewPrice  float64   `json:"new_price" validate:"required,gt=0"`
	OldPrice  float64   `json:"old_price" validate:"omitempty,gte=0"`
	Available bool      `json:"available"`
	Date      time.Time `json:"date"`
}
