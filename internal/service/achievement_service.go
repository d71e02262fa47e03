package service

import (
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// AchievementService handles the family achievement wall
type AchievementService struct {
	achievementRepo *repository.AchievementRepository
	access          *AccessService
}

// NewAchievementService creates a new achievement service
func NewAchievementService(achievementRepo *repository.AchievementRepository, access *AccessService) *AchievementService {
	return &AchievementService{achievementRepo: achievementRepo, access: access}
}

// Celebrate records an achievement on the caller's family wall
func (s *AchievementService) Celebrate(user *models.User, title, description string) error {
	if err := s.access.Authorize(user, ResourceAchievements, user.FamilyCode); err != nil {
		return err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return validation.ValidationError{Field: "title", Message: "title is required"}
	}

	_, err := s.achievementRepo.CreateAchievement(user.ID, title, strings.TrimSpace(description))
	return err
}

// GetAchievements returns the caller's family achievement wall, newest first
func (s *AchievementService) GetAchievements(user *models.User) ([]models.Achievement, error) {
	if err := s.access.Authorize(user, ResourceAchievements, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.achievementRepo.GetFamilyAchievements(user.FamilyCode)
}
