package service

import (
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// familyLocationLimit caps the shared map at the most recent check-ins.
const familyLocationLimit = 10

// FamilyService handles family membership, profiles and location sharing
type FamilyService struct {
	userRepo     *repository.UserRepository
	familyRepo   *repository.FamilyRepository
	locationRepo *repository.LocationRepository
	access       *AccessService
}

// NewFamilyService creates a new family service
func NewFamilyService(userRepo *repository.UserRepository, familyRepo *repository.FamilyRepository,
	locationRepo *repository.LocationRepository, access *AccessService) *FamilyService {
	return &FamilyService{
		userRepo:     userRepo,
		familyRepo:   familyRepo,
		locationRepo: locationRepo,
		access:       access,
	}
}

// GetMembers lists all members of the caller's family
func (s *FamilyService) GetMembers(user *models.User) ([]models.User, error) {
	if err := s.access.Authorize(user, ResourceFeed, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.userRepo.GetFamilyMembers(user.FamilyCode)
}

// GetFamily returns the caller's family record, including the invite code
// used to enroll new members.
func (s *FamilyService) GetFamily(user *models.User) (*models.Family, error) {
	family, err := s.familyRepo.GetFamilyByInviteCode(user.FamilyCode)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, ErrNotFound
	}
	return family, nil
}

// UpdateAvatar changes the caller's avatar. The new value shows up on all
// their past posts and check-ins immediately.
func (s *FamilyService) UpdateAvatar(user *models.User, avatar string) error {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return validation.ValidationError{Field: "avatar", Message: "avatar is required"}
	}
	return s.userRepo.UpdateAvatar(user.ID, avatar)
}

// CheckInLocation records a location check-in visible to the caller's family
func (s *FamilyService) CheckInLocation(user *models.User, name string, lat, lon float64, notes string) error {
	if err := s.access.Authorize(user, ResourceLocations, user.FamilyCode); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return validation.ValidationError{Field: "name", Message: "location name is required"}
	}
	if lat < -90 || lat > 90 {
		return validation.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}
	if lon < -180 || lon > 180 {
		return validation.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}

	_, err := s.locationRepo.CreateLocation(user.ID, name, lat, lon, strings.TrimSpace(notes))
	return err
}

// GetLocations returns the most recent location check-ins in the caller's family
func (s *FamilyService) GetLocations(user *models.User) ([]models.Location, error) {
	if err := s.access.Authorize(user, ResourceLocations, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.locationRepo.GetFamilyLocations(user.FamilyCode, familyLocationLimit)
}
