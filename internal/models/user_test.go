package models

import (
	"testing"
	"time"
)

func TestEffectiveRestriction(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		controls bool
		want     bool
	}{
		{"young child", 8, true, true},
		{"young child without explicit flag", 12, false, true},
		{"teen without controls", 15, false, false},
		{"teen with opt-in controls", 15, true, true},
		{"adult", 40, false, false},
		{"adult with opt-in controls", 40, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{Age: tt.age, ParentalControls: tt.controls}
			if got := u.EffectiveRestriction(); got != tt.want {
				t.Errorf("EffectiveRestriction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsParent(t *testing.T) {
	parent := User{Role: RoleParent}
	child := User{Role: RoleChild}
	if !parent.IsParent() {
		t.Error("parent role should report IsParent")
	}
	if child.IsParent() {
		t.Error("child role should not report IsParent")
	}
}

func TestSessionIsExpired(t *testing.T) {
	live := Session{ExpiresAt: time.Now().Add(time.Hour)}
	if live.IsExpired() {
		t.Error("session expiring in an hour should not be expired")
	}

	dead := Session{ExpiresAt: time.Now().Add(-time.Minute)}
	if !dead.IsExpired() {
		t.Error("session that expired a minute ago should be expired")
	}
}
