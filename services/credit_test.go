package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuinuewasichana/tuinue-be/models"
)

func TestPurchaseIncrementsBalanceAndAppendsTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := NewCreditService(db)
	donor := createUser(t, db, "donor", models.RoleDonor, 100)

	balance, err := svc.Purchase(donor.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)
	assert.Equal(t, 150, currentBalance(t, db, donor.ID))

	history, err := svc.History(donor.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 50, history[0].Amount)
	assert.Equal(t, donor.ID, history[0].UserID)
}

func TestPurchaseRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewCreditService(db)
	donor := createUser(t, db, "donor", models.RoleDonor, 100)

	for _, amount := range []int{0, -10} {
		_, err := svc.Purchase(donor.ID, amount)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	assert.Equal(t, 100, currentBalance(t, db, donor.ID))

	var count int64
	require.NoError(t, db.Model(&models.CreditTransaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPurchaseRequiresDonorRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewCreditService(db)
	admin := createUser(t, db, "admin", models.RoleAdmin, 0)
	charityUser := createUser(t, db, "charity", models.RoleCharity, 0)

	_, err := svc.Purchase(admin.ID, 10)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Purchase(charityUser.ID, 10)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Purchase(9999, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryIsChronologicalAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCreditService(db)
	donor := createUser(t, db, "donor", models.RoleDonor, 0)

	amounts := []int{10, 20, 30}
	for _, amount := range amounts {
		_, err := svc.Purchase(donor.ID, amount)
		require.NoError(t, err)
	}

	first, err := svc.History(donor.ID)
	require.NoError(t, err)
	require.Len(t, first, 3)
	for i, tx := range first {
		assert.Equal(t, amounts[i], tx.Amount)
	}

	second, err := svc.History(donor.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBalanceMatchesPurchaseSum(t *testing.T) {
	db := newTestDB(t)
	svc := NewCreditService(db)
	donor := createUser(t, db, "donor", models.RoleDonor, 0)

	total := 0
	for _, amount := range []int{5, 15, 25} {
		balance, err := svc.Purchase(donor.ID, amount)
		require.NoError(t, err)
		total += amount
		assert.Equal(t, total, balance)
	}

	balance, err := svc.Balance(donor.ID)
	require.NoError(t, err)
	assert.Equal(t, total, balance)
}
