package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/validation"
)

var (
	ErrDuplicateHandle     = errors.New("handle already taken")
	ErrInvalidInviteCode   = errors.New("invalid invite code")
	ErrMissingGuardianLink = errors.New("a guardian is required for members under 13")
)

// EnrollmentService creates families and enrolls members into them
type EnrollmentService struct {
	userRepo   *repository.UserRepository
	familyRepo *repository.FamilyRepository
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(userRepo *repository.UserRepository, familyRepo *repository.FamilyRepository) *EnrollmentService {
	return &EnrollmentService{
		userRepo:   userRepo,
		familyRepo: familyRepo,
	}
}

// Enrollment carries the fields collected on the signup form
type Enrollment struct {
	Name       string
	Handle     string
	Password   string
	Age        int
	Email      string
	Avatar     string
	Bio        string
	Controls   bool   // explicit parental-controls opt-in; forced on under 13
	GuardianID *int64 // required under 13, ignored otherwise
}

// CreateFamilyAndFounder creates a new family and enrolls its founding
// member in one step. The founder's handle becomes the family's creator
// record, and the freshly issued invite code is returned on the family.
func (s *EnrollmentService) CreateFamilyAndFounder(familyName string, e Enrollment) (*models.Family, *models.User, error) {
	if err := s.validate(e); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(familyName) == "" {
		return nil, nil, validation.ValidationError{Field: "family_name", Message: "family name is required"}
	}

	family, err := s.familyRepo.CreateFamily(strings.TrimSpace(familyName), e.Handle)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create family: %w", err)
	}

	user, err := s.enroll(e, family.InviteCode)
	if err != nil {
		return nil, nil, err
	}

	return family, user, nil
}

// EnrollMember enrolls a new member into the family identified by an invite
// code. Role and parental controls are derived from age once, here, and
// stored; under-13 members must name an eligible guardian in the family.
func (s *EnrollmentService) EnrollMember(inviteCode string, e Enrollment) (*models.User, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}

	family, err := s.familyRepo.GetFamilyByInviteCode(normalizeInviteCode(inviteCode))
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	if family == nil {
		return nil, ErrInvalidInviteCode
	}

	return s.enroll(e, family.InviteCode)
}

func (s *EnrollmentService) enroll(e Enrollment, familyCode string) (*models.User, error) {
	role := models.RoleChild
	if e.Age >= models.AdultAge {
		role = models.RoleParent
	}
	controls := e.Controls || e.Age < models.RestrictedAge

	var guardianID *int64
	if e.Age < models.RestrictedAge {
		guardian, err := s.resolveGuardian(e.GuardianID, familyCode)
		if err != nil {
			return nil, err
		}
		guardianID = &guardian.ID
	}

	passwordHash, err := security.HashPassword(e.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:             strings.TrimSpace(e.Name),
		Handle:           e.Handle,
		PasswordHash:     passwordHash,
		Age:              e.Age,
		Email:            strings.TrimSpace(e.Email),
		Avatar:           e.Avatar,
		Role:             role,
		Bio:              strings.TrimSpace(e.Bio),
		FamilyCode:       familyCode,
		ParentalControls: controls,
		GuardianID:       guardianID,
	}

	created, err := s.userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrDuplicateHandle
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// resolveGuardian checks that the named guardian exists, belongs to the same
// family, and is an adult parent.
func (s *EnrollmentService) resolveGuardian(guardianID *int64, familyCode string) (*models.User, error) {
	if guardianID == nil {
		return nil, ErrMissingGuardianLink
	}

	guardian, err := s.userRepo.GetUserByID(*guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up guardian: %w", err)
	}
	if guardian == nil || guardian.FamilyCode != familyCode ||
		!guardian.IsParent() || guardian.Age < models.AdultAge {
		return nil, ErrMissingGuardianLink
	}

	return guardian, nil
}

// EligibleGuardians lists the adult parents of a family, for the signup form
func (s *EnrollmentService) EligibleGuardians(inviteCode string) ([]models.User, error) {
	family, err := s.familyRepo.GetFamilyByInviteCode(normalizeInviteCode(inviteCode))
	if err != nil {
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}
	if family == nil {
		return nil, ErrInvalidInviteCode
	}
	return s.userRepo.GetFamilyParents(family.InviteCode)
}

func (s *EnrollmentService) validate(e Enrollment) error {
	if err := validation.ValidateName(e.Name); err != nil {
		return err
	}
	if err := validation.ValidateHandle(e.Handle); err != nil {
		return err
	}
	if err := validation.ValidatePassword(e.Password); err != nil {
		return err
	}
	return validation.ValidateAge(e.Age)
}

// normalizeInviteCode makes invite code entry forgiving: codes are stored
// uppercase without surrounding whitespace.
func normalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
