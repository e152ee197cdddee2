package models

import (
	"time"
)

// CreditTransaction is one credit purchase. Rows are append-only: donation
// debits are never recorded here, they live in the donations table.
type CreditTransaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"user,omitempty"`
	Amount    int       `json:"amount" gorm:"not null"` // always positive
	CreatedAt time.Time `json:"created_at"`
}

// Donation is a committed transfer of credits from a donor to a charity.
// Rows are immutable once written.
type Donation struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Receipt            string    `json:"receipt" gorm:"uniqueIndex;not null"`
	DonorID            uint      `json:"donor_id" gorm:"not null;index"`
	Donor              User      `json:"donor,omitempty" gorm:"foreignKey:DonorID"`
	CharityID          uint      `json:"charity_id" gorm:"not null;index"`
	Charity            Charity   `json:"charity,omitempty"`
	Amount             int       `json:"amount" gorm:"not null"` // always positive
	IsAnonymous        bool      `json:"is_anonymous" gorm:"default:false"`
	IsRecurring        bool      `json:"is_recurring" gorm:"default:false"`
	RecurringFrequency string    `json:"recurring_frequency,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
