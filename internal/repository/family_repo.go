package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
	"github.com/kingctheceo/togther-app-2/internal/security"
)

// inviteCodeRetries bounds the collision retry loop. The 8-hex-char token
// space makes collisions vanishingly rare, but the constraint is handled
// rather than assumed away.
const inviteCodeRetries = 5

// FamilyRepository handles database operations for families
type FamilyRepository struct {
	db *database.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *database.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// CreateFamily creates a new family with a freshly issued invite code,
// retrying code generation if the code loses the uniqueness race.
func (r *FamilyRepository) CreateFamily(name, createdBy string) (*models.Family, error) {
	query := "INSERT INTO families (name, invite_code, created_by) VALUES (?, ?, ?)"

	var lastErr error
	for i := 0; i < inviteCodeRetries; i++ {
		code := security.GenerateInviteCode()
		id, err := r.db.ExecReturningID(query, name, code, createdBy)
		if err != nil {
			if r.db.IsUniqueViolation(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to create family: %w", err)
		}

		return &models.Family{
			ID:         id,
			Name:       name,
			InviteCode: code,
			CreatedBy:  createdBy,
			CreatedAt:  time.Now(),
		}, nil
	}

	return nil, fmt.Errorf("failed to issue a unique invite code: %w", lastErr)
}

// GetFamilyByInviteCode retrieves a family by its invite code
func (r *FamilyRepository) GetFamilyByInviteCode(code string) (*models.Family, error) {
	query := "SELECT id, name, invite_code, created_by, created_at FROM families WHERE invite_code = ?"
	family := &models.Family{}
	err := r.db.QueryRow(query, code).Scan(
		&family.ID,
		&family.Name,
		&family.InviteCode,
		&family.CreatedBy,
		&family.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return family, nil
}
