package models

import "time"

// Achievement celebrates a family member's milestone
type Achievement struct {
	ID          int64
	UserID      int64
	Handle      string
	Title       string
	Description string
	CreatedAt   time.Time
}
