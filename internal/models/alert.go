package models

import "time"

// Alert is an emergency broadcast from a parent to the whole family
type Alert struct {
	ID        int64
	Sender    string // handle
	Message   string
	CreatedAt time.Time
}
