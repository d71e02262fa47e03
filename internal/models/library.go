package models

import "time"

// AgeGroups for library entries
var AgeGroups = []string{"Kids", "Teens", "Adults", "Everyone"}

// Book is a family library entry
type Book struct {
	ID        int64
	Title     string
	Author    string
	URL       string
	AddedBy   string // handle
	AgeGroup  string
	CreatedAt time.Time

	// Populated for rendering
	AvgRating   float64
	ReviewCount int
	Reviews     []BookReview
}

// BookReview is a rating and comment on a library book
type BookReview struct {
	ID        int64
	BookID    int64
	Reviewer  string // handle
	Rating    int    // 1-5
	Review    string
	CreatedAt time.Time
}
