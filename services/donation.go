package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tuinuewasichana/tuinue-be/models"
	"gorm.io/gorm"
)

// DonationService authorizes and executes donations. The balance check and
// the debit are one guarded UPDATE (credits = credits - ? ... AND credits >= ?)
// evaluated inside the same transaction as the donation insert, so two
// concurrent donations from the same donor can never both spend the same
// credits: the second one sees zero rows affected and fails.
type DonationService struct {
	db *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

// Receipt is the confirmation payload returned after a successful donation.
type Receipt struct {
	Receipt     string    `json:"receipt"`
	CharityID   uint      `json:"charity_id"`
	CharityName string    `json:"charity_name"`
	Amount      int       `json:"amount"`
	IsAnonymous bool      `json:"is_anonymous"`
	IsRecurring bool      `json:"is_recurring"`
	Date        time.Time `json:"date"`
}

// DonorDonation is a donor-facing history row with the charity name resolved.
type DonorDonation struct {
	ID          uint      `json:"id"`
	Receipt     string    `json:"receipt"`
	CharityID   uint      `json:"charity_id"`
	CharityName string    `json:"charity_name"`
	Amount      int       `json:"amount"`
	IsAnonymous bool      `json:"is_anonymous"`
	IsRecurring bool      `json:"is_recurring"`
	Date        time.Time `json:"date"`
}

// CharityDonation is a charity-facing row. DonorID and DonorName are blanked
// for anonymous donations; charity operators can never recover the donor.
type CharityDonation struct {
	ID          uint      `json:"id"`
	DonorID     uint      `json:"donor_id,omitempty"`
	DonorName   string    `json:"donor_name"`
	Amount      int       `json:"amount"`
	IsAnonymous bool      `json:"is_anonymous"`
	IsRecurring bool      `json:"is_recurring"`
	Date        time.Time `json:"date"`
}

type DonateInput struct {
	CharityID          uint
	Amount             int
	IsAnonymous        bool
	IsRecurring        bool
	RecurringFrequency string
}

// Donate validates and atomically executes a donation from the authenticated
// donor. Returns the receipt and the donor's new balance.
func (s *DonationService) Donate(donorID uint, in DonateInput) (*Receipt, int, error) {
	var receipt *Receipt
	var balance int

	err := withContentionRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			var donor models.User
			if err := tx.First(&donor, donorID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if donor.Role != models.RoleDonor {
				return ErrAccessDenied
			}

			if in.Amount <= 0 {
				return ErrInvalidInput
			}

			var charity models.Charity
			if err := tx.First(&charity, in.CharityID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if charity.Status != models.CharityApproved {
				return ErrCharityUnavailable
			}

			// Guarded debit: the balance condition is re-evaluated by the
			// database at write time, so a concurrent debit on the same row
			// makes this affect zero rows instead of going negative.
			res := tx.Model(&models.User{}).
				Where("id = ? AND credits >= ?", donorID, in.Amount).
				Update("credits", gorm.Expr("credits - ?", in.Amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientCredits
			}

			frequency := ""
			if in.IsRecurring {
				frequency = in.RecurringFrequency
				if frequency == "" {
					frequency = "monthly"
				}
			}

			donation := models.Donation{
				Receipt:            uuid.New().String(),
				DonorID:            donorID,
				CharityID:          charity.ID,
				Amount:             in.Amount,
				IsAnonymous:        in.IsAnonymous,
				IsRecurring:        in.IsRecurring,
				RecurringFrequency: frequency,
			}
			if err := tx.Create(&donation).Error; err != nil {
				return err
			}

			// Re-read rather than derive from the earlier snapshot; another
			// donation may have committed between the read and the debit.
			var updated models.User
			if err := tx.First(&updated, donorID).Error; err != nil {
				return err
			}

			balance = updated.Credits
			receipt = &Receipt{
				Receipt:     donation.Receipt,
				CharityID:   charity.ID,
				CharityName: charity.Name,
				Amount:      donation.Amount,
				IsAnonymous: donation.IsAnonymous,
				IsRecurring: donation.IsRecurring,
				Date:        donation.CreatedAt,
			}
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
	}

	return receipt, balance, nil
}

// DonorHistory returns the donor's donations with charity names resolved,
// in chronological order.
func (s *DonationService) DonorHistory(donorID uint) ([]DonorDonation, error) {
	var donor models.User
	if err := s.db.First(&donor, donorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if donor.Role != models.RoleDonor {
		return nil, ErrAccessDenied
	}

	var donations []models.Donation
	if err := s.db.Preload("Charity").
		Where("donor_id = ?", donorID).
		Order("created_at ASC, id ASC").
		Find(&donations).Error; err != nil {
		return nil, err
	}

	history := make([]DonorDonation, 0, len(donations))
	for _, d := range donations {
		history = append(history, DonorDonation{
			ID:          d.ID,
			Receipt:     d.Receipt,
			CharityID:   d.CharityID,
			CharityName: d.Charity.Name,
			Amount:      d.Amount,
			IsAnonymous: d.IsAnonymous,
			IsRecurring: d.IsRecurring,
			Date:        d.CreatedAt,
		})
	}
	return history, nil
}

// CharityDonations returns all donations received by the authenticated
// charity user's profile, with anonymous donors masked.
func (s *DonationService) CharityDonations(userID uint) (int, []CharityDonation, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, ErrNotFound
		}
		return 0, nil, err
	}
	if user.Role != models.RoleCharity {
		return 0, nil, ErrAccessDenied
	}

	var charity models.Charity
	if err := s.db.Where("user_id = ?", userID).First(&charity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, ErrNotFound
		}
		return 0, nil, err
	}
	if charity.Status != models.CharityApproved {
		return 0, nil, ErrCharityUnavailable
	}

	var donations []models.Donation
	if err := s.db.Preload("Donor").
		Where("charity_id = ?", charity.ID).
		Order("created_at ASC, id ASC").
		Find(&donations).Error; err != nil {
		return 0, nil, err
	}

	total := 0
	rows := make([]CharityDonation, 0, len(donations))
	for _, d := range donations {
		total += d.Amount
		row := CharityDonation{
			ID:          d.ID,
			DonorName:   "Anonymous",
			Amount:      d.Amount,
			IsAnonymous: d.IsAnonymous,
			IsRecurring: d.IsRecurring,
			Date:        d.CreatedAt,
		}
		if !d.IsAnonymous {
			row.DonorID = d.DonorID
			row.DonorName = d.Donor.Username
		}
		rows = append(rows, row)
	}
	return total, rows, nil
}
