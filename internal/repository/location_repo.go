package repository

import (
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// LocationRepository handles database operations for location check-ins
type LocationRepository struct {
	db *database.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *database.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// CreateLocation records a location check-in
func (r *LocationRepository) CreateLocation(userID int64, name string, lat, lon float64, notes string) (int64, error) {
	query := "INSERT INTO locations (user_id, name, latitude, longitude, notes) VALUES (?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, userID, name, lat, lon, notes)
	if err != nil {
		return 0, fmt.Errorf("failed to create location: %w", err)
	}
	return id, nil
}

// GetFamilyLocations retrieves the most recent location check-ins within a family
func (r *LocationRepository) GetFamilyLocations(familyCode string, limit int) ([]models.Location, error) {
	query := `
		SELECT l.id, l.user_id, u.handle, u.avatar, l.name, l.latitude, l.longitude, l.notes, l.created_at
		FROM locations l
		INNER JOIN users u ON l.user_id = u.id
		WHERE u.family_code = ?
		ORDER BY l.created_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, familyCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.UserID, &l.Handle, &l.Avatar, &l.Name,
			&l.Latitude, &l.Longitude, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}
