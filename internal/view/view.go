// Package view derives display values from store snapshots. It holds no
// state of its own; every function recomputes from the snapshot and the
// caller's clock.
package view

import (
	"time"

	"deadlinehub/pkg/deadline"
	"deadlinehub/pkg/domain"
)

// UrgentPosts returns the posts whose deadline falls in the urgent bucket
// (under 24 hours left, not yet overdue).
func UrgentPosts(posts []domain.Post, now time.Time) []domain.Post {
	urgent := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if deadline.Classify(p.Deadline, now) == deadline.Urgent {
			urgent = append(urgent, p)
		}
	}
	return urgent
}

// DueSoonCount counts posts due within the dashboard's three-day window:
// strictly positive time remaining, up to and including exactly three days.
// This is deliberately a different boundary convention from
// deadline.Classify and the two are never unified.
func DueSoonCount(posts []domain.Post, now time.Time) int {
	count := 0
	for _, p := range posts {
		left := p.Deadline.Sub(now)
		if left > 0 && left <= 72*time.Hour {
			count++
		}
	}
	return count
}

// StudentStats are the student dashboard counters. All but TotalDeadlines
// are computed over the loaded page only, a deliberate approximation;
// TotalDeadlines is the server's count across all pages.
type StudentStats struct {
	UrgentCount    int
	DueSoonCount   int
	TotalDeadlines int
	UpcomingEvents int
}

// StudentDashboard computes the student counters from the current post and
// event pages.
func StudentDashboard(posts []domain.Post, totalPosts int, events []domain.Event, now time.Time) StudentStats {
	return StudentStats{
		UrgentCount:    len(UrgentPosts(posts, now)),
		DueSoonCount:   DueSoonCount(posts, now),
		TotalDeadlines: totalPosts,
		UpcomingEvents: len(events),
	}
}

// ProfessorStats are the professor dashboard counters, aggregated over the
// loaded page of the professor's posts.
type ProfessorStats struct {
	TotalPosts      int
	TotalViews      int
	AssignmentCount int
	QuizCount       int
	NotesCount      int
}

// ProfessorDashboard computes engagement counters from the current page.
func ProfessorDashboard(posts []domain.Post) ProfessorStats {
	stats := ProfessorStats{TotalPosts: len(posts)}
	for _, p := range posts {
		stats.TotalViews += p.Views
		switch p.PostType {
		case domain.PostAssignment:
			stats.AssignmentCount++
		case domain.PostQuiz:
			stats.QuizCount++
		case domain.PostNotes:
			stats.NotesCount++
		}
	}
	return stats
}
