package models

import "time"

// Roles assigned at enrollment. Role is derived from age once and never
// re-evaluated afterwards.
const (
	RoleParent = "parent"
	RoleChild  = "child"
)

// AdultAge is the threshold for the parent role; RestrictedAge is the
// threshold below which parental controls are mandatory and a guardian
// link is required.
const (
	AdultAge      = 18
	RestrictedAge = 13
)

// User represents a family member account
type User struct {
	ID               int64
	Name             string
	Handle           string
	PasswordHash     string
	Age              int
	Email            string // optional, used for alert notifications
	Avatar           string
	Role             string // RoleParent or RoleChild
	Bio              string
	FamilyCode       string
	ParentalControls bool
	GuardianID       *int64 // required for children under RestrictedAge
	CreatedAt        time.Time
}

// IsParent reports whether the user holds the parent role.
func (u *User) IsParent() bool {
	return u.Role == RoleParent
}

// EffectiveRestriction reports whether kid-only surfaces (learning hub,
// safe browser) apply: under 13, or parental controls explicitly enabled.
func (u *User) EffectiveRestriction() bool {
	return u.Age < RestrictedAge || u.ParentalControls
}

// Session represents an authenticated session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
