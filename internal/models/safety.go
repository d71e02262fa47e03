package models

import "time"

// SafeSite is a curated website available in the safe browser. Stock sites
// carry an empty family code and are visible to every family; parent-added
// sites are scoped to the family that approved them.
type SafeSite struct {
	ID          int64
	Name        string
	URL         string
	Description string
	ApprovedBy  string // handle, or "system" for stock entries
	FamilyCode  string // empty for stock entries
	CreatedAt   time.Time
}

// LearningRecord is a guided-learning log entry for a restricted user
type LearningRecord struct {
	ID        int64
	UserID    int64
	Topic     string
	Score     string // star rating label
	CreatedAt time.Time
}

// LearningScores is the fixed set of self-assessment labels.
var LearningScores = []string{
	"⭐ Good try!", "⭐⭐ Pretty good!", "⭐⭐⭐ Great job!",
	"⭐⭐⭐⭐ Amazing!", "⭐⭐⭐⭐⭐ Perfect!",
}
