package repository

import (
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// MoodRepository handles database operations for mood check-ins and journals
type MoodRepository struct {
	db *database.DB
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *database.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// CreateMood records a mood check-in
func (r *MoodRepository) CreateMood(userID int64, mood string) (int64, error) {
	query := "INSERT INTO moods (user_id, mood) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, userID, mood)
	if err != nil {
		return 0, fmt.Errorf("failed to create mood: %w", err)
	}
	return id, nil
}

// GetFamilyMoods retrieves the most recent mood check-ins within a family
func (r *MoodRepository) GetFamilyMoods(familyCode string, limit int) ([]models.Mood, error) {
	query := `
		SELECT m.id, m.user_id, u.handle, u.avatar, m.mood, m.created_at
		FROM moods m
		INNER JOIN users u ON m.user_id = u.id
		WHERE u.family_code = ?
		ORDER BY m.created_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, familyCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query moods: %w", err)
	}
	defer rows.Close()

	var moods []models.Mood
	for rows.Next() {
		var m models.Mood
		if err := rows.Scan(&m.ID, &m.UserID, &m.Handle, &m.Avatar, &m.Mood, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		moods = append(moods, m)
	}

	return moods, rows.Err()
}

// CreateJournalEntry records a private journal entry
func (r *MoodRepository) CreateJournalEntry(userID int64, content string) (int64, error) {
	query := "INSERT INTO journals (user_id, content) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, userID, content)
	if err != nil {
		return 0, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return id, nil
}

// GetUserJournal retrieves a user's journal entries, newest first. Journals
// are private to their author; callers never pass another user's ID here.
func (r *MoodRepository) GetUserJournal(userID int64) ([]models.JournalEntry, error) {
	query := "SELECT id, user_id, content, created_at FROM journals WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
