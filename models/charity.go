package models

import (
	"time"
)

type CharityStatus string

const (
	CharityPending  CharityStatus = "pending"
	CharityApproved CharityStatus = "approved"
	CharityRejected CharityStatus = "rejected"
)

// Charity is the profile attached to a charity-role user. A charity is in
// exactly one of pending, approved or rejected; the status is stored as a
// single column so a profile can never be approved and rejected at once.
type Charity struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	UserID           uint          `json:"user_id" gorm:"uniqueIndex;not null"`
	User             User          `json:"user,omitempty"`
	Name             string        `json:"name" gorm:"not null"`
	Description      string        `json:"description" gorm:"not null"`
	MissionStatement string        `json:"mission_statement"`
	Location         string        `json:"location"`
	FoundedYear      int           `json:"founded_year"`
	ImpactMetrics    string        `json:"impact_metrics"`
	ContactPerson    string        `json:"contact_person"`
	ContactPhone     string        `json:"contact_phone"`
	Website          string        `json:"website"`
	Status           CharityStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Relations
	Donations []Donation `json:"donations,omitempty"`
	Stories   []Story    `json:"stories,omitempty"`
}

// Approved and Rejected keep the boolean shape older clients consume.
func (c *Charity) Approved() bool {
	return c.Status == CharityApproved
}

func (c *Charity) Rejected() bool {
	return c.Status == CharityRejected
}
