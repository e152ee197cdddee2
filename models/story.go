package models

import (
	"time"
)

// Story is an impact story published by an approved charity.
type Story struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CharityID       uint      `json:"charity_id" gorm:"not null;index"`
	Charity         Charity   `json:"charity,omitempty"`
	Title           string    `json:"title" gorm:"not null"`
	Content         string    `json:"content" gorm:"not null"`
	ImageURL        string    `json:"image_url"`
	BeneficiaryName string    `json:"beneficiary_name"`
	BeneficiaryAge  int       `json:"beneficiary_age"`
	CreatedAt       time.Time `json:"created_at"`
}
