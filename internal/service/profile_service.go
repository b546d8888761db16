package service

import (
	"phhblog/internal/contract"
	"phhblog/internal/domain/entity"
	"phhblog/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ProfileRepository interface {
	Find() (*entity.Profile, error)
}

type DefaultProfileService struct {
	ProfileRepo ProfileRepository
}

func NewProfileService(profileRepo ProfileRepository) *DefaultProfileService {
	return &DefaultProfileService{ProfileRepo: profileRepo}
}

// ProfilePage returns the profile payload. A missing user row is not
// an error: the page renders its empty state.
func (s *DefaultProfileService) ProfilePage() (*contract.ProfilePage, apierror.ErrorResponse) {
	profile, err := s.ProfileRepo.Find()
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.ProfilePage{Profile: profile}, nil
}
