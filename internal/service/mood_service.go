package service

import (
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// familyMoodLimit caps the shared mood wall at the most recent check-ins.
const familyMoodLimit = 10

// MoodService handles mood check-ins and private journals
type MoodService struct {
	moodRepo *repository.MoodRepository
	access   *AccessService
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo *repository.MoodRepository, access *AccessService) *MoodService {
	return &MoodService{moodRepo: moodRepo, access: access}
}

// CheckIn records a mood check-in visible to the caller's family
func (s *MoodService) CheckIn(user *models.User, mood string) error {
	if err := s.access.Authorize(user, ResourceMood, user.FamilyCode); err != nil {
		return err
	}

	if !validMood(mood) {
		return validation.ValidationError{Field: "mood", Message: "unknown mood"}
	}

	_, err := s.moodRepo.CreateMood(user.ID, mood)
	return err
}

// GetFamilyMoods returns the most recent mood check-ins in the caller's family
func (s *MoodService) GetFamilyMoods(user *models.User) ([]models.Mood, error) {
	if err := s.access.Authorize(user, ResourceMood, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.moodRepo.GetFamilyMoods(user.FamilyCode, familyMoodLimit)
}

// AddJournalEntry records a private journal entry for the caller
func (s *MoodService) AddJournalEntry(user *models.User, content string) error {
	if err := s.access.Authorize(user, ResourceMood, user.FamilyCode); err != nil {
		return err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return validation.ValidationError{Field: "content", Message: "journal entry is required"}
	}

	_, err := s.moodRepo.CreateJournalEntry(user.ID, content)
	return err
}

// GetJournal returns the caller's own journal entries. Journals are never
// shared, not even inside the family.
func (s *MoodService) GetJournal(user *models.User) ([]models.JournalEntry, error) {
	if err := s.access.Authorize(user, ResourceMood, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.moodRepo.GetUserJournal(user.ID)
}

func validMood(mood string) bool {
	for _, m := range models.MoodOptions {
		if m == mood {
			return true
		}
	}
	return false
}
