package models

import "time"

// Location is a named place shared with the family
type Location struct {
	ID        int64
	UserID    int64
	Handle    string
	Avatar    string
	Name      string
	Latitude  float64
	Longitude float64
	Notes     string
	CreatedAt time.Time
}
