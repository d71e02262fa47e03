package service

import (
	"path/filepath"
	"testing"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/repository"
)

// newTestDB opens a throwaway SQLite database with the full schema applied.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// newTestEnrollment returns a valid adult enrollment that tests tweak as needed.
func newTestEnrollment(handle string) Enrollment {
	return Enrollment{
		Name:     "Test Member",
		Handle:   handle,
		Password: "password123",
		Age:      35,
		Avatar:   "🙂",
	}
}

// mustCreateFamily creates a family with an adult founder and returns both.
func mustCreateFamily(t *testing.T, svc *EnrollmentService, familyName, founderHandle string) (*models.Family, *models.User) {
	t.Helper()

	family, founder, err := svc.CreateFamilyAndFounder(familyName, newTestEnrollment(founderHandle))
	if err != nil {
		t.Fatalf("failed to create family %q: %v", familyName, err)
	}
	return family, founder
}

func newEnrollmentService(t *testing.T) (*EnrollmentService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	return NewEnrollmentService(userRepo, familyRepo), userRepo
}
