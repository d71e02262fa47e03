package service

import (
	"errors"
	"testing"

	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
)

func newChoreEnv(t *testing.T) (*ChoreService, *EnrollmentService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	choreRepo := repository.NewChoreRepository(db)
	access := NewAccessService()
	return NewChoreService(choreRepo, userRepo, access), NewEnrollmentService(userRepo, familyRepo)
}

func TestChoreLifecycle(t *testing.T) {
	choreSvc, enrollSvc := newChoreEnv(t)
	family, parent := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	teen := newTestEnrollment("teen_smith")
	teen.Age = 16
	teenUser, err := enrollSvc.EnrollMember(family.InviteCode, teen)
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	choreID, err := choreSvc.CreateChore(parent, "Take out the trash", teenUser.Handle, 3)
	if err != nil {
		t.Fatalf("CreateChore() error: %v", err)
	}

	chores, err := choreSvc.GetChores(teenUser)
	if err != nil {
		t.Fatalf("GetChores() error: %v", err)
	}
	if len(chores) != 1 || chores[0].Status != models.ChoreStatusPending {
		t.Fatalf("chores = %v, want one pending chore", chores)
	}

	// The assignee completes it
	if err := choreSvc.CompleteChore(teenUser, choreID); err != nil {
		t.Fatalf("CompleteChore() error: %v", err)
	}

	chores, err = choreSvc.GetChores(parent)
	if err != nil {
		t.Fatalf("GetChores() error: %v", err)
	}
	if chores[0].Status != models.ChoreStatusCompleted {
		t.Errorf("status = %q, want completed", chores[0].Status)
	}
}

func TestCreateChoreParentOnly(t *testing.T) {
	choreSvc, enrollSvc := newChoreEnv(t)
	family, _ := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	teen := newTestEnrollment("teen_smith")
	teen.Age = 15
	teenUser, err := enrollSvc.EnrollMember(family.InviteCode, teen)
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	if _, err := choreSvc.CreateChore(teenUser, "Do my homework for me", teenUser.Handle, 5); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("child creating a chore: expected ErrAccessDenied, got %v", err)
	}
}

func TestCompleteChoreAssigneeOrParent(t *testing.T) {
	choreSvc, enrollSvc := newChoreEnv(t)
	family, parent := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")

	assignee := newTestEnrollment("teen_smith")
	assignee.Age = 16
	assigneeUser, err := enrollSvc.EnrollMember(family.InviteCode, assignee)
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}
	sibling := newTestEnrollment("kid_smith")
	sibling.Age = 14
	siblingUser, err := enrollSvc.EnrollMember(family.InviteCode, sibling)
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	choreID, err := choreSvc.CreateChore(parent, "Sweep the porch", assigneeUser.Handle, 2)
	if err != nil {
		t.Fatalf("CreateChore() error: %v", err)
	}

	if err := choreSvc.CompleteChore(siblingUser, choreID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("non-assignee child completing: expected ErrAccessDenied, got %v", err)
	}

	// A parent can complete any chore on the board
	if err := choreSvc.CompleteChore(parent, choreID); err != nil {
		t.Fatalf("parent CompleteChore() error: %v", err)
	}
}

func TestCreateChoreValidation(t *testing.T) {
	choreSvc, enrollSvc := newChoreEnv(t)
	_, parent := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")
	_, outsider := mustCreateFamily(t, enrollSvc, "The Jones", "dad_jones")

	if _, err := choreSvc.CreateChore(parent, "", parent.Handle, 3); err == nil {
		t.Error("empty task should be rejected")
	}
	if _, err := choreSvc.CreateChore(parent, "Dishes", parent.Handle, 0); err == nil {
		t.Error("reward below 1 star should be rejected")
	}
	if _, err := choreSvc.CreateChore(parent, "Dishes", parent.Handle, 11); err == nil {
		t.Error("reward above 10 stars should be rejected")
	}
	if _, err := choreSvc.CreateChore(parent, "Dishes", outsider.Handle, 3); err == nil {
		t.Error("assigning to another family's member should be rejected")
	}
}

func TestCrossFamilyCompleteDenied(t *testing.T) {
	choreSvc, enrollSvc := newChoreEnv(t)
	_, smith := mustCreateFamily(t, enrollSvc, "The Smiths", "mom_smith")
	_, jones := mustCreateFamily(t, enrollSvc, "The Jones", "dad_jones")

	choreID, err := choreSvc.CreateChore(smith, "Water the plants", smith.Handle, 2)
	if err != nil {
		t.Fatalf("CreateChore() error: %v", err)
	}

	if err := choreSvc.CompleteChore(jones, choreID); err == nil {
		t.Error("completing another family's chore should fail")
	}
}
