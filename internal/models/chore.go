package models

import "time"

// Chore statuses
const (
	ChoreStatusPending   = "Pending"
	ChoreStatusCompleted = "Completed"
)

// Chore is a task assigned by a parent to a family member
type Chore struct {
	ID         int64
	Task       string
	AssignedTo string // handle
	Reward     int    // stars, 1-10
	Status     string
	AddedBy    string // handle
	CreatedAt  time.Time
}
