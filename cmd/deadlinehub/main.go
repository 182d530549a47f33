package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"deadlinehub/internal/app"
	"deadlinehub/internal/config"
	"deadlinehub/internal/util"
	"deadlinehub/internal/view"
	"deadlinehub/pkg/deadline"
	"deadlinehub/pkg/domain"
)

// defaultViewportWidth seeds the sidebar preference when no real viewport
// probe is available.
const defaultViewportWidth = 1280

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv("DEADLINEHUB_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := util.InitLogger(cfg.LogLevel)

	client, err := app.New(cfg, app.Options{
		ViewportWidth: defaultViewportWidth,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	ctx := context.Background()

	// Session resolution gates everything that depends on identity.
	client.ResolveSession(ctx)
	user, ok := client.Session.User()
	if !ok {
		fmt.Println("Not signed in. Set a credential and try again.")
		return
	}

	now := time.Now()
	switch user.Role {
	case domain.RoleProfessor:
		if err := client.RefreshProfessorDashboard(ctx); err != nil {
			logger.Error("dashboard refresh failed", "error", err)
		}
		printProfessorDashboard(client, user)
	default:
		if err := client.RefreshStudentDashboard(ctx); err != nil {
			logger.Error("dashboard refresh failed", "error", err)
		}
		printStudentDashboard(client, user, now)
	}
}

func printStudentDashboard(client *app.App, user domain.User, now time.Time) {
	posts := client.Posts.Snapshot()
	events := client.Events.Snapshot()
	stats := view.StudentDashboard(posts.Items, posts.Total, events.Items, now)

	fmt.Printf("Welcome back, %s!\n\n", user.Username)
	fmt.Printf("  Urgent (< 24h):    %d\n", stats.UrgentCount)
	fmt.Printf("  Due soon (< 3d):   %d\n", stats.DueSoonCount)
	fmt.Printf("  Total deadlines:   %d\n", stats.TotalDeadlines)
	fmt.Printf("  Upcoming events:   %d\n\n", stats.UpcomingEvents)

	for _, p := range posts.Items {
		fmt.Printf("  [%s] %-32s due %s (%s)\n",
			p.PostType, p.Title, deadline.FormatDateTime(p.Deadline), deadline.Remaining(p.Deadline, now))
	}
	printErrors(posts.LastError, events.LastError)
	printNav(user.Role)
}

func printProfessorDashboard(client *app.App, user domain.User) {
	posts := client.Posts.Snapshot()
	stats := view.ProfessorDashboard(posts.Items)

	fmt.Printf("Welcome back, Prof. %s!\n\n", user.Username)
	fmt.Printf("  Posts:       %d\n", stats.TotalPosts)
	fmt.Printf("  Views:       %d\n", stats.TotalViews)
	fmt.Printf("  Assignments: %d\n", stats.AssignmentCount)
	fmt.Printf("  Quizzes:     %d\n", stats.QuizCount)
	fmt.Printf("  Notes:       %d\n", stats.NotesCount)
	printErrors(posts.LastError)
	printNav(user.Role)
}

func printErrors(errs ...string) {
	for _, e := range errs {
		if e != "" {
			fmt.Printf("\n  ! %s\n", e)
		}
	}
}

func printNav(role domain.Role) {
	fmt.Println()
	for _, item := range view.RoleNav(role) {
		fmt.Printf("  %-20s %s\n", item.Title, item.Href)
	}
}
