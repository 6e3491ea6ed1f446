package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/dtos"
	"github.com/Mahesh20s/job-portal/internal/models"
)

func TestRegister_CreatesAccountWithProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db)

	user, err := svc.Register(&dtos.RegisterRequest{
		Username:        "acme_hr",
		Email:           "hr@acme.test",
		Password:        "sw0rdfish!!",
		PasswordConfirm: "sw0rdfish!!",
		IsEmployer:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.True(t, user.Profile.IsEmployer)
	assert.NotEqual(t, "sw0rdfish!!", user.PasswordHash)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.True(t, profile.IsEmployer)
}

func TestRegister_DuplicateEmailLeavesNoRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db)

	_, err := svc.Register(&dtos.RegisterRequest{
		Username: "jane", Email: "jane@example.com",
		Password: "sw0rdfish!!", PasswordConfirm: "sw0rdfish!!",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dtos.RegisterRequest{
		Username: "jane2", Email: "jane@example.com",
		Password: "sw0rdfish!!", PasswordConfirm: "sw0rdfish!!",
	})
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.Equal(t, "email", ae.Details["field"])

	var users, profiles int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&profiles).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), profiles)
}

func TestRegister_DuplicateUsernameRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db)

	_, err := svc.Register(&dtos.RegisterRequest{
		Username: "jane", Email: "jane@example.com",
		Password: "sw0rdfish!!", PasswordConfirm: "sw0rdfish!!",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dtos.RegisterRequest{
		Username: "jane", Email: "other@example.com",
		Password: "sw0rdfish!!", PasswordConfirm: "sw0rdfish!!",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.From(err).Code)
}

func TestLogin_GenericFailureMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db)
	createUser(t, db, "jane", false, nil) // password sw0rdfish!

	// Unknown user and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(&dtos.LoginRequest{Username: "nobody", Password: "whatever"})
	_, errWrongPw := svc.Login(&dtos.LoginRequest{Username: "jane", Password: "not-the-password"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, apperr.From(errUnknown).Message, apperr.From(errWrongPw).Message)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.From(errUnknown).Code)
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db)
	createUser(t, db, "jane", false, nil)

	user, err := svc.Login(&dtos.LoginRequest{Username: "jane", Password: "sw0rdfish!"})
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	require.NotNil(t, user.Profile)
}
