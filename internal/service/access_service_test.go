package service

import (
	"errors"
	"testing"

	"github.com/kingctheceo/togther-app-2/internal/models"
)

func TestAuthorizeFamilyScoping(t *testing.T) {
	svc := NewAccessService()
	parent := &models.User{Role: models.RoleParent, Age: 40, FamilyCode: "SMITH123"}

	resources := []Resource{
		ResourceFeed, ResourceChores, ResourceMood, ResourceMessages,
		ResourceLocations, ResourceLibrary, ResourceAchievements, ResourceAlerts,
	}
	for _, resource := range resources {
		t.Run(string(resource), func(t *testing.T) {
			if err := svc.Authorize(parent, resource, "SMITH123"); err != nil {
				t.Errorf("own family: unexpected error %v", err)
			}
			if err := svc.Authorize(parent, resource, "JONES456"); !errors.Is(err, ErrAccessDenied) {
				t.Errorf("other family: expected ErrAccessDenied, got %v", err)
			}
		})
	}
}

func TestAuthorizeRestrictedSurfaces(t *testing.T) {
	svc := NewAccessService()

	kid := &models.User{Role: models.RoleChild, Age: 8, ParentalControls: true, FamilyCode: "SMITH123"}
	optIn := &models.User{Role: models.RoleChild, Age: 15, ParentalControls: true, FamilyCode: "SMITH123"}
	teen := &models.User{Role: models.RoleChild, Age: 15, FamilyCode: "SMITH123"}
	parent := &models.User{Role: models.RoleParent, Age: 40, FamilyCode: "SMITH123"}

	for _, resource := range []Resource{ResourceLearning, ResourceBrowser} {
		t.Run(string(resource), func(t *testing.T) {
			if err := svc.Authorize(kid, resource, "SMITH123"); err != nil {
				t.Errorf("under-13 should be allowed: %v", err)
			}
			if err := svc.Authorize(optIn, resource, "SMITH123"); err != nil {
				t.Errorf("opted-in teen should be allowed: %v", err)
			}
			if err := svc.Authorize(teen, resource, "SMITH123"); !errors.Is(err, ErrAccessDenied) {
				t.Errorf("unrestricted teen: expected ErrAccessDenied, got %v", err)
			}
			if err := svc.Authorize(parent, resource, "SMITH123"); !errors.Is(err, ErrAccessDenied) {
				t.Errorf("parent: expected ErrAccessDenied, got %v", err)
			}
		})
	}
}

func TestAuthorizeParentOnlySurfaces(t *testing.T) {
	svc := NewAccessService()

	parent := &models.User{Role: models.RoleParent, Age: 40, FamilyCode: "SMITH123"}
	child := &models.User{Role: models.RoleChild, Age: 15, FamilyCode: "SMITH123"}

	for _, resource := range []Resource{ResourceAlertSend, ResourceSiteApprove, ResourceChoreAssign} {
		t.Run(string(resource), func(t *testing.T) {
			if err := svc.Authorize(parent, resource, "SMITH123"); err != nil {
				t.Errorf("parent should be allowed: %v", err)
			}
			if err := svc.Authorize(child, resource, "SMITH123"); !errors.Is(err, ErrAccessDenied) {
				t.Errorf("child: expected ErrAccessDenied, got %v", err)
			}
			// Role alone is not enough across family lines
			if err := svc.Authorize(parent, resource, "JONES456"); !errors.Is(err, ErrAccessDenied) {
				t.Errorf("cross-family parent: expected ErrAccessDenied, got %v", err)
			}
		})
	}
}

func TestAuthorizeNilUser(t *testing.T) {
	svc := NewAccessService()
	if err := svc.Authorize(nil, ResourceFeed, "SMITH123"); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("nil user: expected ErrAccessDenied, got %v", err)
	}
}
