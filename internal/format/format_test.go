package format

import (
	"testing"
	"time"
)

func f(v float64) *float64 { return &v }

func TestSalaryRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
		expected string
	}{
		{"both bounds", f(120000), f(150000), "$120,000 - $150,000"},
		{"min only", f(120000), nil, "From $120,000"},
		{"max only", nil, f(90000), "Up to $90,000"},
		{"neither", nil, nil, ""},
		{"small values", f(500), f(900), "$500 - $900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalaryRange(tt.min, tt.max)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShortSalaryRange(t *testing.T) {
	if got := ShortSalaryRange(f(60000), f(75000)); got != "$60k-$75k" {
		t.Errorf("got %q", got)
	}
	if got := ShortSalaryRange(f(60000), nil); got != "" {
		t.Errorf("expected empty for missing bound, got %q", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
		{"old falls back to date", now.Add(-45 * 24 * time.Hour), "May 1, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeAgo(tt.at, now)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	if got := DaysAgo(now.Add(-50*time.Hour), now); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := DaysUntil(now.Add(50*time.Hour), now); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}
