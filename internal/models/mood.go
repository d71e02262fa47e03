package models

import "time"

// MoodOptions is the fixed set of moods offered on the mood board.
var MoodOptions = []string{
	"😊 Happy", "😐 Okay", "😢 Sad", "😠 Angry", "🤩 Excited", "😴 Tired",
	"😟 Worried", "🥰 Loved", "😎 Cool", "🤔 Thoughtful",
}

// Mood is a mood shared on the family mood board
type Mood struct {
	ID        int64
	UserID    int64
	Handle    string
	Avatar    string
	Mood      string
	CreatedAt time.Time
}

// JournalEntry is a private note visible only to its author
type JournalEntry struct {
	ID        int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}
