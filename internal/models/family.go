package models

import "time"

// InviteCodeLength is the fixed length of family invite codes.
const InviteCodeLength = 8

// Family represents a household sharing one private space. The invite code
// is globally unique and immutable once issued.
type Family struct {
	ID         int64
	Name       string
	InviteCode string
	CreatedBy  string // founder's handle
	CreatedAt  time.Time
}
