package service

import (
	"errors"
	"testing"

	"github.com/kingctheceo/togther-app-2/internal/models"
)

func TestCreateFamilyAndFounder(t *testing.T) {
	svc, _ := newEnrollmentService(t)

	family, founder, err := svc.CreateFamilyAndFounder("The Smiths", newTestEnrollment("mom_smith"))
	if err != nil {
		t.Fatalf("CreateFamilyAndFounder() error: %v", err)
	}

	if len(family.InviteCode) != models.InviteCodeLength {
		t.Errorf("invite code %q has length %d, want %d", family.InviteCode, len(family.InviteCode), models.InviteCodeLength)
	}
	if founder.FamilyCode != family.InviteCode {
		t.Errorf("founder family code = %q, want %q", founder.FamilyCode, family.InviteCode)
	}
	if founder.Role != models.RoleParent {
		t.Errorf("founder role = %q, want parent", founder.Role)
	}
	if founder.PasswordHash == "password123" {
		t.Error("password must be stored hashed")
	}
}

func TestEnrollMemberRoleDerivation(t *testing.T) {
	tests := []struct {
		name         string
		age          int
		wantRole     string
		wantControls bool
	}{
		{"adult is a parent", 18, models.RoleParent, false},
		{"teen is a child without controls", 17, models.RoleChild, false},
		{"teen just above restriction", 13, models.RoleChild, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEnrollmentService(t)
			family, _ := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

			e := newTestEnrollment("member_" + tt.name[:4])
			e.Handle = "member1"
			e.Age = tt.age

			member, err := svc.EnrollMember(family.InviteCode, e)
			if err != nil {
				t.Fatalf("EnrollMember() error: %v", err)
			}
			if member.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", member.Role, tt.wantRole)
			}
			if member.ParentalControls != tt.wantControls {
				t.Errorf("parental controls = %v, want %v", member.ParentalControls, tt.wantControls)
			}
		})
	}
}

func TestEnrollMemberExplicitControlsOptIn(t *testing.T) {
	svc, _ := newEnrollmentService(t)
	family, _ := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

	e := newTestEnrollment("teen_smith")
	e.Age = 15
	e.Controls = true

	member, err := svc.EnrollMember(family.InviteCode, e)
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}
	if !member.ParentalControls {
		t.Error("explicit opt-in should enable parental controls")
	}
	if member.GuardianID != nil {
		t.Error("a 15-year-old does not need a guardian link")
	}
}

func TestEnrollMemberUnder13RequiresGuardian(t *testing.T) {
	svc, _ := newEnrollmentService(t)
	family, founder := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

	e := newTestEnrollment("kid_smith")
	e.Age = 8

	// No guardian named
	if _, err := svc.EnrollMember(family.InviteCode, e); !errors.Is(err, ErrMissingGuardianLink) {
		t.Errorf("expected ErrMissingGuardianLink, got %v", err)
	}

	// Valid guardian
	e.GuardianID = &founder.ID
	member, err := svc.EnrollMember(family.InviteCode, e)
	if err != nil {
		t.Fatalf("EnrollMember() with guardian error: %v", err)
	}
	if member.GuardianID == nil || *member.GuardianID != founder.ID {
		t.Error("guardian link not stored")
	}
	if !member.ParentalControls {
		t.Error("under-13 members must have parental controls enabled")
	}
}

func TestEnrollMemberRejectsIneligibleGuardians(t *testing.T) {
	svc, _ := newEnrollmentService(t)
	family, _ := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

	// A child member of the same family is not an eligible guardian
	teen := newTestEnrollment("teen_smith")
	teen.Age = 16
	teenUser, err := svc.EnrollMember(family.InviteCode, teen)
	if err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	kid := newTestEnrollment("kid_smith")
	kid.Age = 8
	kid.GuardianID = &teenUser.ID
	if _, err := svc.EnrollMember(family.InviteCode, kid); !errors.Is(err, ErrMissingGuardianLink) {
		t.Errorf("child guardian: expected ErrMissingGuardianLink, got %v", err)
	}

	// A parent from a different family is not eligible either
	otherFamily, otherParent := mustCreateFamily(t, svc, "The Jones", "dad_jones")
	_ = otherFamily
	kid.GuardianID = &otherParent.ID
	if _, err := svc.EnrollMember(family.InviteCode, kid); !errors.Is(err, ErrMissingGuardianLink) {
		t.Errorf("cross-family guardian: expected ErrMissingGuardianLink, got %v", err)
	}
}

func TestEnrollMemberInvalidInviteCode(t *testing.T) {
	svc, _ := newEnrollmentService(t)

	if _, err := svc.EnrollMember("NOPE1234", newTestEnrollment("anyone")); !errors.Is(err, ErrInvalidInviteCode) {
		t.Errorf("expected ErrInvalidInviteCode, got %v", err)
	}
}

func TestEnrollMemberInviteCodeNormalization(t *testing.T) {
	svc, _ := newEnrollmentService(t)
	family, _ := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

	// Lowercase with surrounding whitespace still matches
	sloppy := "  " + family.InviteCode + " "
	member, err := svc.EnrollMember(sloppy, newTestEnrollment("dad_smith"))
	if err != nil {
		t.Fatalf("EnrollMember() with sloppy code error: %v", err)
	}
	if member.FamilyCode != family.InviteCode {
		t.Errorf("family code = %q, want %q", member.FamilyCode, family.InviteCode)
	}
}

func TestEnrollMemberDuplicateHandle(t *testing.T) {
	svc, userRepo := newEnrollmentService(t)
	family, _ := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

	if _, err := svc.EnrollMember(family.InviteCode, newTestEnrollment("dad_smith")); err != nil {
		t.Fatalf("first enrollment error: %v", err)
	}

	if _, err := svc.EnrollMember(family.InviteCode, newTestEnrollment("dad_smith")); !errors.Is(err, ErrDuplicateHandle) {
		t.Errorf("expected ErrDuplicateHandle, got %v", err)
	}

	// The failed enrollment must not leave a second row behind
	members, err := userRepo.GetFamilyMembers(family.InviteCode)
	if err != nil {
		t.Fatalf("GetFamilyMembers() error: %v", err)
	}
	count := 0
	for _, m := range members {
		if m.Handle == "dad_smith" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("found %d rows for dad_smith, want 1", count)
	}
}

func TestEligibleGuardians(t *testing.T) {
	svc, _ := newEnrollmentService(t)
	family, founder := mustCreateFamily(t, svc, "The Smiths", "mom_smith")

	teen := newTestEnrollment("teen_smith")
	teen.Age = 16
	if _, err := svc.EnrollMember(family.InviteCode, teen); err != nil {
		t.Fatalf("EnrollMember() error: %v", err)
	}

	guardians, err := svc.EligibleGuardians(family.InviteCode)
	if err != nil {
		t.Fatalf("EligibleGuardians() error: %v", err)
	}
	if len(guardians) != 1 || guardians[0].ID != founder.ID {
		t.Errorf("expected exactly the founder as guardian, got %d entries", len(guardians))
	}
}
