package service

import (
	"errors"

	"github.com/kingctheceo/togther-app-2/internal/models"
)

var ErrAccessDenied = errors.New("access denied")

// Resource identifies a feature surface for authorization checks
type Resource string

const (
	ResourceFeed         Resource = "feed"
	ResourceChores       Resource = "chores"
	ResourceChoreAssign  Resource = "chores:assign"
	ResourceMood         Resource = "mood"
	ResourceMessages     Resource = "messages"
	ResourceLocations    Resource = "locations"
	ResourceLibrary      Resource = "library"
	ResourceAchievements Resource = "achievements"
	ResourceAlerts       Resource = "alerts"
	ResourceAlertSend    Resource = "alerts:send"
	ResourceLearning     Resource = "learning"
	ResourceBrowser      Resource = "browser"
	ResourceSiteApprove  Resource = "browser:approve"
)

// AccessService is the single authorization gate. Every feature operation
// passes through Authorize before touching family data.
type AccessService struct{}

// NewAccessService creates a new access service
func NewAccessService() *AccessService {
	return &AccessService{}
}

// Authorize checks whether a user may act on a resource belonging to the
// given family. All resources are family-scoped; the kid surfaces
// (learning hub, safe browser) additionally require the caller to be under
// effective restriction, and the parent-only capabilities (sending an
// emergency alert, approving safe sites, assigning chores) require the
// parent role.
func (s *AccessService) Authorize(user *models.User, resource Resource, familyCode string) error {
	if user == nil {
		return ErrAccessDenied
	}
	if user.FamilyCode != familyCode {
		return ErrAccessDenied
	}

	switch resource {
	case ResourceLearning, ResourceBrowser:
		if !user.EffectiveRestriction() {
			return ErrAccessDenied
		}
	case ResourceAlertSend, ResourceSiteApprove, ResourceChoreAssign:
		if !user.IsParent() {
			return ErrAccessDenied
		}
	}

	return nil
}
