package date

import (
	"testing"
	"time"
)

// TestTime assert that the Time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.Time() != d2.Time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid Time() function same day gives two different time")
	}
	if got := New(2025, 2, 29); got != New(2025, 3, 1) {
		t.Errorf("New(2025, 2, 29) = %v, want it normalized to 2025-03-01", got)
	}
}

func TestParse(t *testing.T) {
	today := New(2025, 3, 1)
	tests := []struct {
		in   string
		want Date
	}{
		{"", Date{}},
		{"today", today},
		{" Yesterday ", New(2025, 2, 28)},
		{"-0", today},
		{"-7", New(2025, 2, 22)},
		{"2025-1-5", New(2025, 1, 5)},
		{"2024-12-31", New(2024, 12, 31)},
	}
	for _, tt := range tests {
		got, err := parse(tt.in, today)
		if err != nil {
			t.Errorf("parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"tomorrow", "-x", "2025/01/05", "2025-3-2"} {
		if got, err := parse(in, today); err == nil {
			t.Errorf("parse(%q) = %v, want an error", in, got)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(2025, time.July, 1).String(); got != "2025-07-01" {
		t.Errorf("String() = %q, want 2025-07-01", got)
	}
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero String() = %q, want empty", got)
	}
}
