package service

import (
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

// MessageService handles direct messages between family members
type MessageService struct {
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
	access      *AccessService
}

// NewMessageService creates a new message service
func NewMessageService(messageRepo *repository.MessageRepository, userRepo *repository.UserRepository, access *AccessService) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo, access: access}
}

// SendMessage delivers a direct message to another member of the caller's
// family. Messaging outside the family is not possible.
func (s *MessageService) SendMessage(user *models.User, recipientHandle, body string) error {
	recipient, err := s.resolveMember(user, recipientHandle)
	if err != nil {
		return err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return validation.ValidationError{Field: "message", Message: "message is required"}
	}

	_, err = s.messageRepo.CreateMessage(user.Handle, recipient.Handle, body)
	return err
}

// GetConversation returns the message history between the caller and another
// family member, oldest first.
func (s *MessageService) GetConversation(user *models.User, otherHandle string) ([]models.Message, error) {
	other, err := s.resolveMember(user, otherHandle)
	if err != nil {
		return nil, err
	}
	return s.messageRepo.GetConversation(user.Handle, other.Handle)
}

// resolveMember authorizes the caller for messaging and resolves the other
// party, requiring them to be in the same family.
func (s *MessageService) resolveMember(user *models.User, handle string) (*models.User, error) {
	if err := s.access.Authorize(user, ResourceMessages, user.FamilyCode); err != nil {
		return nil, err
	}

	other, err := s.userRepo.GetUserByHandle(handle)
	if err != nil {
		return nil, err
	}
	if other == nil || other.FamilyCode != user.FamilyCode {
		return nil, ErrAccessDenied
	}

	return other, nil
}
