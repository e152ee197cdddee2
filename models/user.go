package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleDonor   UserRole = "donor"
	RoleCharity UserRole = "charity"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"not null"`
	Credits   int       `json:"credits" gorm:"not null;default:0"` // never negative
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Transactions []CreditTransaction `json:"transactions,omitempty"`
	Donations    []Donation          `json:"donations,omitempty" gorm:"foreignKey:DonorID"`
}
