package service

import (
	"context"
	"log"
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// SafetyService handles emergency alerts, the safe browser and the learning
// log — the three safety-oriented surfaces.
type SafetyService struct {
	safetyRepo *repository.SafetyRepository
	userRepo   *repository.UserRepository
	email      *EmailService
	access     *AccessService
}

// NewSafetyService creates a new safety service
func NewSafetyService(safetyRepo *repository.SafetyRepository, userRepo *repository.UserRepository,
	email *EmailService, access *AccessService) *SafetyService {
	return &SafetyService{
		safetyRepo: safetyRepo,
		userRepo:   userRepo,
		email:      email,
		access:     access,
	}
}

// SendAlert raises an emergency alert to the caller's family. Only parents
// can send alerts. Family members with an email address on file are notified
// by email; notification failures are logged but never fail the alert itself.
func (s *SafetyService) SendAlert(ctx context.Context, user *models.User, message string) error {
	if err := s.access.Authorize(user, ResourceAlertSend, user.FamilyCode); err != nil {
		return err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return validation.ValidationError{Field: "message", Message: "alert message is required"}
	}

	if _, err := s.safetyRepo.CreateAlert(user.Handle, message); err != nil {
		return err
	}

	if !s.email.IsEnabled() {
		return nil
	}

	members, err := s.userRepo.GetFamilyMembers(user.FamilyCode)
	if err != nil {
		log.Printf("Warning: alert saved but member lookup failed: %v", err)
		return nil
	}
	for _, member := range members {
		if member.Email == "" || member.ID == user.ID {
			continue
		}
		if err := s.email.SendAlertEmail(ctx, member.Email, member.Name, user.Name, message); err != nil {
			log.Printf("Warning: failed to email alert to %s: %v", member.Handle, err)
		}
	}

	return nil
}

// GetAlerts returns the alerts raised within the caller's family, newest first
func (s *SafetyService) GetAlerts(user *models.User) ([]models.Alert, error) {
	if err := s.access.Authorize(user, ResourceAlerts, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.safetyRepo.GetFamilyAlerts(user.FamilyCode)
}

// ApproveSite adds a site to the caller's family safe browser list. Only
// parents can approve sites.
func (s *SafetyService) ApproveSite(user *models.User, name, url, description string) error {
	if err := s.access.Authorize(user, ResourceSiteApprove, user.FamilyCode); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" {
		return validation.ValidationError{Field: "name", Message: "site name is required"}
	}
	if url == "" {
		return validation.ValidationError{Field: "url", Message: "site url is required"}
	}

	_, err := s.safetyRepo.CreateSafeSite(name, url, strings.TrimSpace(description), user.Handle, user.FamilyCode)
	return err
}

// GetSafeSites returns the safe browser list for a restricted caller: the
// stock sites plus any approved by the caller's family parents.
func (s *SafetyService) GetSafeSites(user *models.User) ([]models.SafeSite, error) {
	if err := s.access.Authorize(user, ResourceBrowser, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.safetyRepo.GetSafeSites(user.FamilyCode)
}

// GetManagedSites returns the safe browser list for a parent managing it
func (s *SafetyService) GetManagedSites(user *models.User) ([]models.SafeSite, error) {
	if err := s.access.Authorize(user, ResourceSiteApprove, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.safetyRepo.GetSafeSites(user.FamilyCode)
}

// RecordLearning logs a completed learning activity for a restricted caller
func (s *SafetyService) RecordLearning(user *models.User, topic, score string) error {
	if err := s.access.Authorize(user, ResourceLearning, user.FamilyCode); err != nil {
		return err
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return validation.ValidationError{Field: "topic", Message: "topic is required"}
	}
	if !validLearningScore(score) {
		return validation.ValidationError{Field: "score", Message: "unknown score"}
	}

	_, err := s.safetyRepo.CreateLearningRecord(user.ID, topic, score)
	return err
}

// GetLearningLog returns the restricted caller's own learning history
func (s *SafetyService) GetLearningLog(user *models.User) ([]models.LearningRecord, error) {
	if err := s.access.Authorize(user, ResourceLearning, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.safetyRepo.GetUserLearningRecords(user.ID)
}

func validLearningScore(score string) bool {
	for _, s := range models.LearningScores {
		if s == score {
			return true
		}
	}
	return false
}
