package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuinuewasichana/tuinue-be/models"
)

func TestResetTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewResetService(db)
	auth := NewAuthService(db)

	_, _, err := auth.Register("jane", "jane@example.com", "Password1", models.RoleDonor, nil)
	require.NoError(t, err)

	token, err := svc.generateToken("jane@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(token, "NewPassword2"))

	_, _, err = auth.Login("jane@example.com", "NewPassword2")
	require.NoError(t, err)

	_, _, err = auth.Login("jane@example.com", "Password1")
	assert.Error(t, err)
}

func TestResetConfirmRejectsForgedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewResetService(db)

	err := svc.Confirm("not-a-token", "NewPassword2")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResetConfirmRejectsAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewResetService(db)
	auth := NewAuthService(db)

	user, _, err := auth.Register("jane", "jane@example.com", "Password1", models.RoleDonor, nil)
	require.NoError(t, err)

	// An ordinary access token is not purpose-scoped for resets
	accessToken, err := auth.GenerateToken(user)
	require.NoError(t, err)

	err = svc.Confirm(accessToken, "NewPassword2")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
