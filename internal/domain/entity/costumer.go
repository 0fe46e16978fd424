package entity

import "time"

// Costumer cliente de la empresa. Phone y Email son únicos.
type Costumer struct {
	ID        string
	Firstname string
	Lastname  string
	Phone     string
	Email     string
	CreatedAt time.Time
	LastLogin *time.Time
	UserID    string // empleado que lo registró
}
