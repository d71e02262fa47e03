package security

import (
	"strings"
	"testing"
)

func TestGenerateInviteCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateInviteCode()
		if len(code) != 8 {
			t.Fatalf("invite code %q has length %d, want 8", code, len(code))
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("invite code %q is not uppercase", code)
		}
		for _, c := range code {
			if !strings.ContainsRune("0123456789ABCDEF", c) {
				t.Fatalf("invite code %q contains unexpected character %q", code, c)
			}
		}
	}
}

func TestGenerateInviteCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateInviteCode()
		if seen[code] {
			t.Fatalf("duplicate invite code %q after %d generations", code, i)
		}
		seen[code] = true
	}
}

func TestGenerateSessionIDUniqueness(t *testing.T) {
	first := GenerateSessionID()
	second := GenerateSessionID()
	if first == "" || second == "" {
		t.Fatal("session IDs must not be empty")
	}
	if first == second {
		t.Fatal("session IDs must be unique")
	}
}
