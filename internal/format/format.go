// Package format holds the display helpers the job listing and dashboard
// endpoints attach to their rows.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// SalaryRange renders the full listing form: "$120,000 - $150,000",
// "From $120,000", "Up to $150,000" or "" when neither bound is set.
func SalaryRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%s - $%s", comma(*min), comma(*max))
	case min != nil:
		return "From $" + comma(*min)
	case max != nil:
		return "Up to $" + comma(*max)
	}
	return ""
}

// ShortSalaryRange renders the compact dashboard form: "$120k-$150k".
func ShortSalaryRange(min, max *float64) string {
	if min == nil || max == nil {
		return ""
	}
	return fmt.Sprintf("$%.0fk-$%.0fk", *min/1000, *max/1000)
}

// PostedDate renders "Jan 2, 2006".
func PostedDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DaysAgo is the whole number of days since t.
func DaysAgo(t time.Time, now time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

// DaysUntil is the whole number of days from now until t.
func DaysUntil(t time.Time, now time.Time) int {
	return int(math.Floor(t.Sub(now).Hours() / 24))
}

// TimeAgo buckets a timestamp into the feed's relative form: "just now",
// "N minutes ago", "N hours ago", "N days ago", or the absolute date once
// it is more than thirty days old.
func TimeAgo(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
	return PostedDate(t)
}

// comma formats 1234567 as "1,234,567".
func comma(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
