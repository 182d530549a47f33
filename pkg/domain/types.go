package domain

import "time"

type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

type PostType string

const (
	PostAssignment PostType = "assignment"
	PostQuiz       PostType = "quiz"
	PostNotes      PostType = "notes"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type EventCategory string

const (
	CategoryTechnical EventCategory = "technical"
	CategoryCultural  EventCategory = "cultural"
	CategorySports    EventCategory = "sports"
	CategoryAcademic  EventCategory = "academic"
	CategoryOther     EventCategory = "other"
)

// User is the authenticated identity. Role-specific fields are populated
// according to Role and empty otherwise.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`

	// Student fields.
	RollNumber string `json:"rollNumber,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Group      string `json:"group,omitempty"`
	Subgroup   string `json:"subgroup,omitempty"`

	// Professor fields.
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Author carries the denormalized display fields the server embeds on
// records it returns.
type Author struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Post is a deadline item (assignment, quiz or study notes).
type Post struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PostType     PostType  `json:"postType"`
	Deadline     time.Time `json:"deadline"`
	TargetGroups []string  `json:"targetGroups"`
	Priority     Priority  `json:"priority"`
	Attachments  []string  `json:"attachments,omitempty"`
	CreatedBy    Author    `json:"createdBy"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Event is a campus event.
type Event struct {
	ID          string        `json:"_id"`
	Subject     string        `json:"subject"`
	Description string        `json:"description"`
	EventDate   time.Time     `json:"eventDate"`
	Location    string        `json:"location"`
	Category    EventCategory `json:"category"`
	CreatedBy   Author        `json:"createdBy"`
	Likes       int           `json:"likes"`
	Comments    []Comment     `json:"comments,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Comment is a single comment attached to an event, in server order.
type Comment struct {
	ID        string    `json:"_id"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
