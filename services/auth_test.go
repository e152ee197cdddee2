package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuinuewasichana/tuinue-be/models"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Password1", true},
		{"Sup3rSecret", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"NoDigitsHere", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPassword(tc.password), tc.password)
	}
}

func TestRegisterDonorIssuesAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, charity, err := svc.Register("jane", "jane@example.com", "Password1", models.RoleDonor, nil)
	require.NoError(t, err)
	assert.Nil(t, charity)
	assert.Equal(t, models.RoleDonor, user.Role)
	assert.Zero(t, user.Credits)

	// Stored password is hashed, never the plaintext
	assert.NotEqual(t, "Password1", user.Password)
	assert.True(t, svc.CheckPassword("Password1", user.Password))

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegisterRejectsDuplicateEmailAndWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register("jane", "jane@example.com", "Password1", models.RoleDonor, nil)
	require.NoError(t, err)

	_, _, err = svc.Register("jane2", "jane@example.com", "Password1", models.RoleDonor, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register("weak", "weak@example.com", "weak", models.RoleDonor, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register("bad", "not-an-email", "Password1", models.RoleDonor, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCharityRegistrationStartsPending(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	auth := NewAuthService(db)
	charities := NewCharityService(db)

	user, charity, err := auth.Register("hope", "hope@example.org", "Password1", models.RoleCharity, &CharityApplication{
		Name:        "Hope Foundation",
		Description: "Supports education for girls",
		Location:    "Nairobi",
	})
	require.NoError(t, err)
	require.NotNil(t, charity)
	assert.Equal(t, models.CharityPending, charity.Status)
	assert.Equal(t, user.ID, charity.UserID)

	// Pending charities cannot log in
	_, _, err = auth.Login("hope@example.org", "Password1")
	assert.ErrorIs(t, err, ErrCharityUnavailable)

	// Once approved, login succeeds
	_, err = charities.SetStatus(charity.ID, boolPtr(true), nil)
	require.NoError(t, err)

	logged, token, err := auth.Login("hope@example.org", "Password1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token)

	// Rejection locks the account out again
	_, err = charities.SetStatus(charity.ID, nil, boolPtr(true))
	require.NoError(t, err)
	_, _, err = auth.Login("hope@example.org", "Password1")
	assert.ErrorIs(t, err, ErrCharityUnavailable)
}

func TestCharityRegistrationRequiresApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register("noapp", "noapp@example.org", "Password1", models.RoleCharity, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register("jane", "jane@example.com", "Password1", models.RoleDonor, nil)
	require.NoError(t, err)

	_, _, err = svc.Login("jane@example.com", "WrongPassword1")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody@example.com", "Password1")
	assert.Error(t, err)
}
