package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuinuewasichana/tuinue-be/models"
)

func boolPtr(b bool) *bool { return &b }

func TestSetStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewCharityService(db)
	_, charity := createCharity(t, db, "charity", models.CharityPending)

	updated, err := svc.SetStatus(charity.ID, boolPtr(true), nil)
	require.NoError(t, err)
	assert.Equal(t, models.CharityApproved, updated.Status)

	// Rejecting an approved charity moves it to rejected, not both
	updated, err = svc.SetStatus(charity.ID, nil, boolPtr(true))
	require.NoError(t, err)
	assert.Equal(t, models.CharityRejected, updated.Status)

	// Clearing the rejection returns it to pending
	updated, err = svc.SetStatus(charity.ID, nil, boolPtr(false))
	require.NoError(t, err)
	assert.Equal(t, models.CharityPending, updated.Status)
}

func TestSetStatusRejectsContradictoryFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewCharityService(db)
	_, charity := createCharity(t, db, "charity", models.CharityPending)

	_, err := svc.SetStatus(charity.ID, boolPtr(true), boolPtr(true))
	assert.ErrorIs(t, err, ErrInvalidInput)

	var unchanged models.Charity
	require.NoError(t, db.First(&unchanged, charity.ID).Error)
	assert.Equal(t, models.CharityPending, unchanged.Status)
}

func TestSetStatusOmittedFlagsKeepState(t *testing.T) {
	db := newTestDB(t)
	svc := NewCharityService(db)
	_, charity := createCharity(t, db, "charity", models.CharityApproved)

	updated, err := svc.SetStatus(charity.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CharityApproved, updated.Status)

	_, err = svc.SetStatus(9999, boolPtr(true), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAllIncludesEveryState(t *testing.T) {
	db := newTestDB(t)
	svc := NewCharityService(db)
	createCharity(t, db, "pending", models.CharityPending)
	createCharity(t, db, "approved", models.CharityApproved)
	createCharity(t, db, "rejected", models.CharityRejected)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	visible, err := svc.ListApproved()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "approved", visible[0].Name)
}

func TestGetHidesRejectedCharities(t *testing.T) {
	db := newTestDB(t)
	svc := NewCharityService(db)
	_, approved := createCharity(t, db, "approved", models.CharityApproved)
	_, pending := createCharity(t, db, "pending", models.CharityPending)
	_, rejected := createCharity(t, db, "rejected", models.CharityRejected)

	got, err := svc.Get(approved.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", got.Name)

	// Pending profiles are visible by id, rejected ones are not
	_, err = svc.Get(pending.ID)
	require.NoError(t, err)

	_, err = svc.Get(rejected.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoryPublishingRequiresApproval(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoryService(db)
	approvedOwner, approved := createCharity(t, db, "approved", models.CharityApproved)
	pendingOwner, _ := createCharity(t, db, "pending", models.CharityPending)
	donor := createUser(t, db, "donor", models.RoleDonor, 0)

	story, err := svc.Create(approvedOwner.ID, StoryInput{
		Title:           "Clean water for Amani",
		Content:         "The new well serves 300 families.",
		BeneficiaryName: "Amani",
		BeneficiaryAge:  12,
	})
	require.NoError(t, err)
	assert.Equal(t, approved.ID, story.CharityID)
	assert.NotEmpty(t, story.ImageURL) // placeholder applied when omitted

	_, err = svc.Create(pendingOwner.ID, StoryInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrCharityUnavailable)

	_, err = svc.Create(donor.ID, StoryInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	stories, err := svc.ListByCharity(approved.ID)
	require.NoError(t, err)
	assert.Len(t, stories, 1)
}
