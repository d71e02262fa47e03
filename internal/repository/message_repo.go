package repository

import (
	"fmt"

	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/models"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *database.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateMessage inserts a direct message between two handles
func (r *MessageRepository) CreateMessage(sender, recipient, body string) (int64, error) {
	query := "INSERT INTO messages (sender, recipient, body) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, sender, recipient, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}
	return id, nil
}

// GetConversation retrieves messages exchanged between two handles in either
// direction, oldest first.
func (r *MessageRepository) GetConversation(handleA, handleB string) ([]models.Message, error) {
	query := `
		SELECT id, sender, recipient, body, created_at
		FROM messages
		WHERE (sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query, handleA, handleB, handleB, handleA)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
