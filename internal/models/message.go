package models

import "time"

// Message is a direct message between two family members
type Message struct {
	ID        int64
	Sender    string // handle
	Recipient string // handle
	Body      string
	CreatedAt time.Time
}
