// Package tasks holds the simulated task list shown on the Tasks screen and
// the status machine that governs it.
package tasks

import "time"

// Status is a task's lifecycle state.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusFailed    Status = "failed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusRunning, StatusCompleted, StatusPaused, StatusFailed}

// ParseStatus returns the status named by s.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Type is the kind of work a task represents.
type Type string

const (
	TypeResearch Type = "research"
	TypeCoding   Type = "coding"
	TypeAnalysis Type = "analysis"
	TypeWriting  Type = "writing"
	TypeGeneral  Type = "general"
)

// Task is one unit of simulated assistant work.
type Task struct {
	ID            string
	Title         string
	Description   string
	Status        Status
	Type          Type
	Progress      int // percent, 0-100
	StartTime     time.Time
	EstimatedTime *int // minutes, nil when unknown
	Details       string
}

// Action is a user-triggered status change.
type Action string

const (
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionComplete Action = "complete"
	ActionFail     Action = "fail"
)

// Transition records a status change.
type Transition struct {
	TaskID string
	From   Status
	To     Status
	Action Action
	At     time.Time
}

func minutes(n int) *int {
	return &n
}

// SeedTasks returns the initial task list relative to now.
func SeedTasks(now time.Time) []Task {
	return []Task{
		{
			ID:            "1",
			Title:         "Market Research Analysis",
			Description:   "Gathering comprehensive data on mobile app market trends",
			Status:        StatusRunning,
			Type:          TypeResearch,
			Progress:      65,
			StartTime:     now.Add(-25 * time.Minute),
			EstimatedTime: minutes(45),
		},
		{
			ID:          "2",
			Title:       "Code Review & Optimization",
			Description: "Analyzing React Native performance bottlenecks",
			Status:      StatusCompleted,
			Type:        TypeCoding,
			Progress:    100,
			StartTime:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "User Documentation",
			Description: "Creating comprehensive API documentation",
			Status:      StatusPaused,
			Type:        TypeWriting,
			Progress:    40,
			StartTime:   now.Add(-1 * time.Hour),
		},
		{
			ID:          "4",
			Title:       "Data Processing Pipeline",
			Description: "Setting up automated data analysis workflow",
			Status:      StatusFailed,
			Type:        TypeAnalysis,
			Progress:    20,
			StartTime:   now.Add(-3 * time.Hour),
			Details:     "Source bucket returned 403 Forbidden",
		},
		{
			ID:            "5",
			Title:         "Weekly Planning Summary",
			Description:   "Summarizing open items and priorities for the week",
			Status:        StatusRunning,
			Type:          TypeGeneral,
			Progress:      95,
			StartTime:     now.Add(-50 * time.Minute),
			EstimatedTime: minutes(40),
		},
	}
}
