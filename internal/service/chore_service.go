package service

import (
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// Star reward bounds for a chore.
const (
	MinChoreReward = 1
	MaxChoreReward = 10
)

// ChoreService handles the family chore board
type ChoreService struct {
	choreRepo *repository.ChoreRepository
	userRepo  *repository.UserRepository
	access    *AccessService
}

// NewChoreService creates a new chore service
func NewChoreService(choreRepo *repository.ChoreRepository, userRepo *repository.UserRepository, access *AccessService) *ChoreService {
	return &ChoreService{choreRepo: choreRepo, userRepo: userRepo, access: access}
}

// CreateChore adds a pending chore assigned to a member of the caller's
// family. Only parents assign chores.
func (s *ChoreService) CreateChore(user *models.User, task, assignedTo string, reward int) (int64, error) {
	if err := s.access.Authorize(user, ResourceChoreAssign, user.FamilyCode); err != nil {
		return 0, err
	}

	task = strings.TrimSpace(task)
	if task == "" {
		return 0, validation.ValidationError{Field: "task", Message: "task is required"}
	}
	if reward < MinChoreReward || reward > MaxChoreReward {
		return 0, validation.ValidationError{Field: "reward", Message: "reward must be between 1 and 10 stars"}
	}

	assignee, err := s.userRepo.GetUserByHandle(assignedTo)
	if err != nil {
		return 0, err
	}
	if assignee == nil || assignee.FamilyCode != user.FamilyCode {
		return 0, validation.ValidationError{Field: "assigned_to", Message: "assignee must be a family member"}
	}

	return s.choreRepo.CreateChore(task, assignee.Handle, reward, user.Handle)
}

// GetChores returns the caller's family chore board, newest first
func (s *ChoreService) GetChores(user *models.User) ([]models.Chore, error) {
	if err := s.access.Authorize(user, ResourceChores, user.FamilyCode); err != nil {
		return nil, err
	}
	return s.choreRepo.GetFamilyChores(user.FamilyCode)
}

// CompleteChore marks a chore done. Only the assignee or a parent in the
// chore's family can complete it.
func (s *ChoreService) CompleteChore(user *models.User, choreID int64) error {
	chore, err := s.choreRepo.GetChoreByID(choreID)
	if err != nil {
		return err
	}
	if chore == nil {
		return ErrNotFound
	}

	creator, err := s.userRepo.GetUserByHandle(chore.AddedBy)
	if err != nil {
		return err
	}
	if creator == nil {
		return ErrNotFound
	}
	if err := s.access.Authorize(user, ResourceChores, creator.FamilyCode); err != nil {
		return err
	}
	if chore.AssignedTo != user.Handle && !user.IsParent() {
		return ErrAccessDenied
	}

	return s.choreRepo.CompleteChore(choreID)
}
