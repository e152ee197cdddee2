package services

import (
	"errors"

	"github.com/tuinuewasichana/tuinue-be/models"
	"gorm.io/gorm"
)

// CreditService owns the credit ledger: the running balance on the user row
// plus the append-only purchase log. The two are only ever written together,
// inside one transaction, so the balance always equals the sum of purchases
// minus the sum of donated amounts.
type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService {
	return &CreditService{db: db}
}

// Purchase credits the donor's balance and appends a transaction record.
// Returns the new balance.
func (s *CreditService) Purchase(userID uint, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidInput
	}

	var balance int
	err := withContentionRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if user.Role != models.RoleDonor {
				return ErrAccessDenied
			}

			if err := tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("credits", gorm.Expr("credits + ?", amount)).Error; err != nil {
				return err
			}

			transaction := models.CreditTransaction{
				UserID: userID,
				Amount: amount,
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}

			var updated models.User
			if err := tx.First(&updated, userID).Error; err != nil {
				return err
			}
			balance = updated.Credits
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// Balance returns the donor's current credit balance.
func (s *CreditService) Balance(userID uint) (int, error) {
	user, err := s.requireDonor(userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}

// History returns the donor's credit purchases in chronological order.
func (s *CreditService) History(userID uint) ([]models.CreditTransaction, error) {
	if _, err := s.requireDonor(userID); err != nil {
		return nil, err
	}

	var transactions []models.CreditTransaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&transactions).Error

	return transactions, err
}

func (s *CreditService) requireDonor(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleDonor {
		return nil, ErrAccessDenied
	}
	return &user, nil
}
