package repository

import (
	"database/sql"
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// ChoreRepository handles database operations for chores
type ChoreRepository struct {
	db *database.DB
}

// NewChoreRepository creates a new chore repository
func NewChoreRepository(db *database.DB) *ChoreRepository {
	return &ChoreRepository{db: db}
}

// CreateChore inserts a new pending chore
func (r *ChoreRepository) CreateChore(task, assignedTo string, reward int, addedBy string) (int64, error) {
	query := "INSERT INTO chores (task, assigned_to, reward, status, added_by) VALUES (?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, task, assignedTo, reward, models.ChoreStatusPending, addedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to create chore: %w", err)
	}
	return id, nil
}

// GetFamilyChores retrieves all chores created within a family, newest first
func (r *ChoreRepository) GetFamilyChores(familyCode string) ([]models.Chore, error) {
	query := `
		SELECT c.id, c.task, c.assigned_to, c.reward, c.status, c.added_by, c.created_at
		FROM chores c
		INNER JOIN users u ON c.added_by = u.handle
		WHERE u.family_code = ?
		ORDER BY c.created_at DESC
	`
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query chores: %w", err)
	}
	defer rows.Close()

	var chores []models.Chore
	for rows.Next() {
		var chore models.Chore
		if err := rows.Scan(&chore.ID, &chore.Task, &chore.AssignedTo, &chore.Reward,
			&chore.Status, &chore.AddedBy, &chore.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chore: %w", err)
		}
		chores = append(chores, chore)
	}

	return chores, rows.Err()
}

// GetChoreByID retrieves a chore by ID
func (r *ChoreRepository) GetChoreByID(id int64) (*models.Chore, error) {
	query := "SELECT id, task, assigned_to, reward, status, added_by, created_at FROM chores WHERE id = ?"
	chore := &models.Chore{}
	err := r.db.QueryRow(query, id).Scan(&chore.ID, &chore.Task, &chore.AssignedTo,
		&chore.Reward, &chore.Status, &chore.AddedBy, &chore.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chore: %w", err)
	}
	return chore, nil
}

// CompleteChore marks a chore completed
func (r *ChoreRepository) CompleteChore(id int64) error {
	query := "UPDATE chores SET status = ? WHERE id = ?"
	if _, err := r.db.Exec(query, models.ChoreStatusCompleted, id); err != nil {
		return fmt.Errorf("failed to complete chore: %w", err)
	}
	return nil
}
