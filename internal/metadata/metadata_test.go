package metadata

import (
	"testing"
	"time"
)

func int64p(v int64) *int64 { return &v }

func TestSizeInRange(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		min, max *int64
		want     bool
	}{
		{"no bounds", 42, nil, nil, true},
		{"above min", 42, int64p(10), nil, true},
		{"below min", 5, int64p(10), nil, false},
		{"min is inclusive", 10, int64p(10), nil, true},
		{"below max", 42, nil, int64p(100), true},
		{"above max", 200, nil, int64p(100), false},
		{"max is inclusive", 100, nil, int64p(100), true},
		{"zero max admits empty file", 0, nil, int64p(0), true},
		{"zero max rejects one byte", 1, nil, int64p(0), false},
		{"both bounds", 50, int64p(10), int64p(100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeInRange(tt.size, tt.min, tt.max); got != tt.want {
				t.Errorf("SizeInRange(%d) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestMTimeInRange(t *testing.T) {
	day := func(s string) time.Time {
		ts, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", s, err)
		}
		return ts
	}

	after := day("2024-01-01")
	before := day("2024-12-31")

	tests := []struct {
		name          string
		mtime         time.Time
		after, before *time.Time
		want          bool
	}{
		{"no bounds", day("2020-06-15"), nil, nil, true},
		{"inside range", day("2024-06-15"), &after, &before, true},
		{"before range", day("2023-06-15"), &after, &before, false},
		{"after range", day("2025-06-15"), &after, &before, false},
		{"lower bound is exclusive", day("2024-01-01"), &after, nil, false},
		{"upper bound is exclusive", day("2024-12-31"), nil, &before, false},
		{"just past lower bound", day("2024-01-02"), &after, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MTimeInRange(tt.mtime, tt.after, tt.before); got != tt.want {
				t.Errorf("MTimeInRange(%v) = %v, want %v", tt.mtime, got, tt.want)
			}
		})
	}
}
