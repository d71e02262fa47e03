package repository

import (
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// AchievementRepository handles database operations for achievements
type AchievementRepository struct {
	db *database.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *database.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// CreateAchievement records a celebrated achievement
func (r *AchievementRepository) CreateAchievement(userID int64, title, description string) (int64, error) {
	query := "INSERT INTO achievements (user_id, title, description) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, userID, title, description)
	if err != nil {
		return 0, fmt.Errorf("failed to create achievement: %w", err)
	}
	return id, nil
}

// GetFamilyAchievements retrieves the achievements celebrated within a family,
// newest first.
func (r *AchievementRepository) GetFamilyAchievements(familyCode string) ([]models.Achievement, error) {
	query := `
		SELECT a.id, a.user_id, u.handle, a.title, a.description, a.created_at
		FROM achievements a
		INNER JOIN users u ON a.user_id = u.id
		WHERE u.family_code = ?
		ORDER BY a.created_at DESC
	`
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Handle, &a.Title, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}
