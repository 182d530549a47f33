// Package deadline evaluates how much time is left until a deadline and
// which urgency bucket that places it in. Every function takes the current
// time as an argument so results are reproducible.
package deadline

import (
	"fmt"
	"time"

	"deadlinehub/pkg/domain"
)

// Bucket is one of the four urgency classifications.
type Bucket string

const (
	Overdue Bucket = "overdue"
	Urgent  Bucket = "urgent"
	DueSoon Bucket = "dueSoon"
	Normal  Bucket = "normal"
)

const (
	urgentWindow  = 24 * time.Hour
	dueSoonWindow = 72 * time.Hour
)

// Classify maps a deadline and the current time to an urgency bucket.
// Windows are inclusive of their lower bound and exclusive of the upper:
// exactly 24h left is DueSoon, exactly 72h left is Normal, and a deadline
// equal to now is Urgent, not Overdue.
func Classify(deadline, now time.Time) Bucket {
	left := deadline.Sub(now)
	switch {
	case left < 0:
		return Overdue
	case left < urgentWindow:
		return Urgent
	case left < dueSoonWindow:
		return DueSoon
	default:
		return Normal
	}
}

// Remaining renders the time left as a short human string: "3h 20m" under a
// day, "2d 5h" under three days, "10 days" beyond that, "Overdue" once the
// deadline has passed. Components are floored, never rounded.
func Remaining(deadline, now time.Time) string {
	left := deadline.Sub(now)
	if left < 0 {
		return "Overdue"
	}
	days := int(left / (24 * time.Hour))
	hours := int(left/time.Hour) % 24
	minutes := int(left/time.Minute) % 60
	switch {
	case left < urgentWindow:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case left < dueSoonWindow:
		return fmt.Sprintf("%dd %dh", days, hours)
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// StatusClass is the legacy three-class styling policy used by the post
// cards. It folds overdue and under-24h into "danger" and uses the same 72h
// threshold as Classify for "warning". Kept separate from Classify on
// purpose; the two policies disagree at the boundaries.
func StatusClass(deadline, now time.Time) string {
	hoursLeft := deadline.Sub(now).Hours()
	switch {
	case hoursLeft < 24:
		return "danger"
	case hoursLeft < 72:
		return "warning"
	default:
		return "success"
	}
}

// PriorityColor maps a post priority to its display hex color.
func PriorityColor(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "#dc2626"
	case domain.PriorityMedium:
		return "#f59e0b"
	case domain.PriorityLow:
		return "#10b981"
	default:
		return "#4f46e5"
	}
}

// FormatDate renders a timestamp as e.g. "Mar 7, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a timestamp as e.g. "Mar 7, 2026, 09:41 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}
