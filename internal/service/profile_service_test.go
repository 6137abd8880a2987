package service_test

import (
	"testing"

	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestGetProfile(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewProfileService(users)

	_, err := svc.GetProfile("missing")
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))

	require.NoError(t, users.Create(&model.User{ID: "user-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}))

	profile, err := svc.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.False(t, profile.OnboardingCompleted)
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewProfileService(users)
	require.NoError(t, users.Create(&model.User{
		ID: "user-1", FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Phone: "+44 1234",
	}))

	year := 2027
	profile, err := svc.UpdateProfile("user-1", dto.UpdateProfileRequest{
		TargetRole:          strPtr("Backend Engineer"),
		GraduationYear:      &year,
		OnboardingCompleted: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", profile.TargetRole)
	require.NotNil(t, profile.GraduationYear)
	assert.Equal(t, 2027, *profile.GraduationYear)
	assert.True(t, profile.OnboardingCompleted)

	// Untouched fields keep their values.
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "+44 1234", profile.Phone)
}
