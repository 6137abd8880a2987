package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProfileService exposes the profile fields the CV pipeline reads as
// signals, including the onboarding flag that gates submission.
type ProfileService interface {
	GetProfile(userID string) (*dto.ProfileDTO, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileDTO, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) GetProfile(userID string) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "profile not found")
		}
		return nil, apperror.Wrap(err, "error looking up profile")
	}
	var resp dto.ProfileDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Wrap(err, "error preparing profile response")
	}
	return &resp, nil
}

func (s *profileService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "profile not found")
		}
		return nil, apperror.Wrap(err, "error looking up profile")
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.TargetRole != nil {
		user.TargetRole = *req.TargetRole
	}
	if req.EducationLevel != nil {
		user.EducationLevel = *req.EducationLevel
	}
	if req.GraduationYear != nil {
		user.GraduationYear = req.GraduationYear
	}
	if req.OnboardingCompleted != nil {
		user.OnboardingCompleted = *req.OnboardingCompleted
	}

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to update profile")
		return nil, apperror.Wrap(err, "error updating profile")
	}

	var resp dto.ProfileDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, apperror.Wrap(err, "error preparing profile response")
	}
	return &resp, nil
}
