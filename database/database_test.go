package database

import (
	"encoding/hex"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newID()
		if len(id) != 24 {
			t.Fatalf("newID() = %q, want 24 hex characters", id)
		}
		if _, err := hex.DecodeString(id); err != nil {
			t.Fatalf("newID() = %q, not hex: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("newID() repeated %q", id)
		}
		seen[id] = true
	}
}
