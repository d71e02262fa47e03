package repository

import (
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// SafetyRepository handles database operations for emergency alerts, the safe
// browser site list and learning records.
type SafetyRepository struct {
	db *database.DB
}

// NewSafetyRepository creates a new safety repository
func NewSafetyRepository(db *database.DB) *SafetyRepository {
	return &SafetyRepository{db: db}
}

// CreateAlert records an emergency alert
func (r *SafetyRepository) CreateAlert(sender, message string) (int64, error) {
	query := "INSERT INTO alerts (sender, message) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, sender, message)
	if err != nil {
		return 0, fmt.Errorf("failed to create alert: %w", err)
	}
	return id, nil
}

// GetFamilyAlerts retrieves the alerts raised within a family, newest first
func (r *SafetyRepository) GetFamilyAlerts(familyCode string) ([]models.Alert, error) {
	query := `
		SELECT a.id, a.sender, a.message, a.created_at
		FROM alerts a
		INNER JOIN users u ON a.sender = u.handle
		WHERE u.family_code = ?
		ORDER BY a.created_at DESC
	`
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.Sender, &a.Message, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// CreateSafeSite adds a parent-approved site for one family
func (r *SafetyRepository) CreateSafeSite(name, url, description, approvedBy, familyCode string) (int64, error) {
	query := "INSERT INTO safe_sites (name, url, description, approved_by, family_code) VALUES (?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, name, url, description, approvedBy, familyCode)
	if err != nil {
		return 0, fmt.Errorf("failed to create safe site: %w", err)
	}
	return id, nil
}

// GetSafeSites retrieves the sites visible to a family: the stock list
// (rows with an empty family code, seeded by migration) plus any sites a
// parent of that family approved.
func (r *SafetyRepository) GetSafeSites(familyCode string) ([]models.SafeSite, error) {
	query := `
		SELECT id, name, url, description, approved_by, family_code, created_at
		FROM safe_sites
		WHERE family_code = '' OR family_code = ?
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query, familyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query safe sites: %w", err)
	}
	defer rows.Close()

	var sites []models.SafeSite
	for rows.Next() {
		var s models.SafeSite
		if err := rows.Scan(&s.ID, &s.Name, &s.URL, &s.Description, &s.ApprovedBy, &s.FamilyCode, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan safe site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, rows.Err()
}

// CreateLearningRecord records a completed learning activity
func (r *SafetyRepository) CreateLearningRecord(userID int64, topic, score string) (int64, error) {
	query := "INSERT INTO learning_records (user_id, topic, score) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, userID, topic, score)
	if err != nil {
		return 0, fmt.Errorf("failed to create learning record: %w", err)
	}
	return id, nil
}

// GetUserLearningRecords retrieves a user's learning log, newest first
func (r *SafetyRepository) GetUserLearningRecords(userID int64) ([]models.LearningRecord, error) {
	query := "SELECT id, user_id, topic, score, created_at FROM learning_records WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query learning records: %w", err)
	}
	defer rows.Close()

	var records []models.LearningRecord
	for rows.Next() {
		var rec models.LearningRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Topic, &rec.Score, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan learning record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
