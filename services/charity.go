package services

import (
	"errors"

	"github.com/tuinuewasichana/tuinue-be/models"
	"gorm.io/gorm"
)

type CharityService struct {
	db *gorm.DB
}

func NewCharityService(db *gorm.DB) *CharityService {
	return &CharityService{db: db}
}

// ListApproved returns the charities visible to the public.
func (s *CharityService) ListApproved() ([]models.Charity, error) {
	var charities []models.Charity
	err := s.db.Where("status = ?", models.CharityApproved).
		Order("id ASC").
		Find(&charities).Error
	return charities, err
}

// Get returns a single charity profile. Rejected charities are hidden from
// the public the same way missing ones are.
func (s *CharityService) Get(charityID uint) (*models.Charity, error) {
	var charity models.Charity
	if err := s.db.First(&charity, charityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if charity.Status == models.CharityRejected {
		return nil, ErrNotFound
	}
	return &charity, nil
}

// GetByUser returns the profile owned by a charity-role user.
func (s *CharityService) GetByUser(userID uint) (*models.Charity, error) {
	var charity models.Charity
	if err := s.db.Where("user_id = ?", userID).First(&charity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &charity, nil
}

// ListAll returns every charity profile regardless of state. Admin only.
func (s *CharityService) ListAll() ([]models.Charity, error) {
	var charities []models.Charity
	err := s.db.Order("id ASC").Find(&charities).Error
	return charities, err
}

// SetStatus applies a partial approved/rejected update. Omitted flags keep
// the prior state; asserting both at once has no defined meaning and is
// rejected rather than stored.
func (s *CharityService) SetStatus(charityID uint, approved, rejected *bool) (*models.Charity, error) {
	if approved != nil && rejected != nil && *approved && *rejected {
		return nil, ErrInvalidInput
	}

	var charity models.Charity
	if err := s.db.First(&charity, charityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status := charity.Status
	if approved != nil {
		if *approved {
			status = models.CharityApproved
		} else if status == models.CharityApproved {
			status = models.CharityPending
		}
	}
	if rejected != nil {
		if *rejected {
			status = models.CharityRejected
		} else if status == models.CharityRejected {
			status = models.CharityPending
		}
	}

	if err := s.db.Model(&charity).Update("status", status).Error; err != nil {
		return nil, err
	}
	charity.Status = status
	return &charity, nil
}
