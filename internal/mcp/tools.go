// ABOUTME: MCP tool implementations for the practice tracker.
// ABOUTME: Provides logging, undo, day/status queries, and gated resets.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/practice/internal/dates"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_practice
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_practice",
		Description: "Log practice minutes for a task (piano, solfege, study, vocal, conducting)",
	}, s.handleLogPractice)

	// undo_practice
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "undo_practice",
		Description: "Remove logged minutes from a task, dropping the most recent matching entry",
	}, s.handleUndoPractice)

	// get_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the practice record for a day with completion status",
	}, s.handleGetDay)

	// get_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Get the current streak, today's progress, and track levels",
	}, s.handleGetStatus)

	// get_calendar
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Get per-day completion status for a month",
	}, s.handleGetCalendar)

	// reset_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_day",
		Description: "Erase all practice logged on a day and refund its experience",
	}, s.handleResetDay)

	// reset_all
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_all",
		Description: "Erase all practice history and reset every track to level 1",
	}, s.handleResetAll)
}

// Tool input/output types

type logPracticeInput struct {
	Task    string  `json:"task" jsonschema:"Task name (piano, solfege, study, vocal, conducting)"`
	Minutes float64 `json:"minutes" jsonschema:"Minutes practiced (positive)"`
	Title   string  `json:"title,omitempty" jsonschema:"Optional note, e.g. the piece practiced"`
	Date    string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type logPracticeOutput struct {
	ID      string  `json:"id"`
	Task    string  `json:"task"`
	Minutes float64 `json:"minutes"`
	Date    string  `json:"date"`
	Message string  `json:"message"`
}

type undoPracticeInput struct {
	Task    string  `json:"task" jsonschema:"Task name"`
	Minutes float64 `json:"minutes" jsonschema:"Minutes to remove"`
	Date    string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type getDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type getCalendarInput struct {
	Month string `json:"month,omitempty" jsonschema:"Any date in the month (YYYY-MM-DD), defaults to today"`
}

type resetDayInput struct {
	Date    string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Confirm bool   `json:"confirm" jsonschema:"Must be true; resets are irreversible"`
}

type resetAllInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true; resets are irreversible"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type entryOutput struct {
	ID      string  `json:"id"`
	Task    string  `json:"task"`
	Title   string  `json:"title,omitempty"`
	Minutes float64 `json:"minutes"`
}

type dayOutput struct {
	Date    string             `json:"date"`
	Minutes map[string]float64 `json:"minutes"`
	Total   float64            `json:"total"`
	Entries []entryOutput      `json:"entries"`
	Done    bool               `json:"done"`
	Status  string             `json:"status"`
}

type trackOutput struct {
	Track    string  `json:"track"`
	Level    int     `json:"level"`
	XP       float64 `json:"xp"`
	Required float64 `json:"required"`
}

type statusOutput struct {
	Today  string        `json:"today"`
	Streak int           `json:"streak"`
	Total  float64       `json:"today_total"`
	Done   bool          `json:"today_done"`
	Tracks []trackOutput `json:"tracks"`
}

// resolveDate validates an optional date input, defaulting to today.
func (s *Server) resolveDate(date string) (string, error) {
	if date == "" {
		return s.tracker.Today(), nil
	}
	if dates.Parse(date).IsZero() {
		return "", fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func (s *Server) dayOutput(date string) dayOutput {
	day := s.tracker.Recorded(date)

	out := dayOutput{
		Date:    date,
		Minutes: make(map[string]float64, len(models.AllTasks)),
		Entries: []entryOutput{},
		Done:    s.tracker.DayDone(date),
	}
	for _, task := range models.AllTasks {
		if day != nil {
			out.Minutes[string(task)] = day.MinutesFor(task)
		} else {
			out.Minutes[string(task)] = 0
		}
	}
	if day != nil {
		out.Total = day.TotalMinutes()
		for _, e := range day.Entries {
			out.Entries = append(out.Entries, entryOutput{
				ID:      e.ID.String()[:8],
				Task:    string(e.Task),
				Title:   e.Title,
				Minutes: e.Minutes,
			})
		}
	}

	switch s.tracker.DayStatusOn(date) {
	case tracker.StatusDone:
		out.Status = "done"
	case tracker.StatusPartial:
		out.Status = "partial"
	default:
		out.Status = "empty"
	}
	return out
}

// Tool handlers

func (s *Server) handleLogPractice(ctx context.Context, req *mcp.CallToolRequest, input logPracticeInput) (*mcp.CallToolResult, logPracticeOutput, error) {
	if !models.IsValidTask(input.Task) {
		return nil, logPracticeOutput{}, fmt.Errorf("unknown task: %s", input.Task)
	}
	if input.Minutes <= 0 {
		return nil, logPracticeOutput{}, fmt.Errorf("minutes must be positive, got %v", input.Minutes)
	}

	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, logPracticeOutput{}, err
	}

	e, err := s.tracker.AddEntry(date, models.Task(input.Task), input.Minutes, input.Title)
	if err != nil {
		return nil, logPracticeOutput{}, fmt.Errorf("failed to log practice: %w", err)
	}

	return nil, logPracticeOutput{
		ID:      e.ID.String()[:8],
		Task:    input.Task,
		Minutes: e.Minutes,
		Date:    date,
		Message: fmt.Sprintf("Logged %.1f min of %s on %s (ID: %s)", e.Minutes, models.TaskLabels[e.Task], date, e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleUndoPractice(ctx context.Context, req *mcp.CallToolRequest, input undoPracticeInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidTask(input.Task) {
		return nil, simpleOutput{}, fmt.Errorf("unknown task: %s", input.Task)
	}
	if input.Minutes <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("minutes must be positive, got %v", input.Minutes)
	}

	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	removed, err := s.tracker.RemoveLast(date, models.Task(input.Task), input.Minutes)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to undo practice: %w", err)
	}

	if removed == 0 {
		return nil, simpleOutput{
			Message: fmt.Sprintf("Nothing to remove for %s on %s", input.Task, date),
		}, nil
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Removed %.1f min of %s on %s", removed, models.TaskLabels[models.Task(input.Task)], date),
	}, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, dayOutput, error) {
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, dayOutput{}, err
	}
	return nil, s.dayOutput(date), nil
}

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, statusOutput, error) {
	today := s.tracker.Today()
	ledger := s.tracker.Ledger()

	out := statusOutput{
		Today:  today,
		Streak: s.tracker.Streak(),
		Done:   s.tracker.DayDone(today),
	}
	if day := s.tracker.Recorded(today); day != nil {
		out.Total = day.TotalMinutes()
	}
	for _, track := range models.AllTracks {
		st := ledger.State(track)
		out.Tracks = append(out.Tracks, trackOutput{
			Track:    string(track),
			Level:    st.Level,
			XP:       st.XP,
			Required: models.RequirementFor(st.Level),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetCalendar(ctx context.Context, req *mcp.CallToolRequest, input getCalendarInput) (*mcp.CallToolResult, any, error) {
	date, err := s.resolveDate(input.Month)
	if err != nil {
		return nil, nil, err
	}

	statuses := make(map[string]string)
	for _, d := range dates.MonthDates(date) {
		switch s.tracker.DayStatusOn(d) {
		case tracker.StatusDone:
			statuses[d] = "done"
		case tracker.StatusPartial:
			statuses[d] = "partial"
		default:
			statuses[d] = "empty"
		}
	}

	return nil, map[string]any{
		"month":  date[:7],
		"days":   statuses,
		"streak": s.tracker.Streak(),
	}, nil
}

func (s *Server) handleResetDay(ctx context.Context, req *mcp.CallToolRequest, input resetDayInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, fmt.Errorf("reset_day requires confirm=true")
	}

	date, err := s.resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if _, err := s.tracker.ResetDay(date, nil); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset day: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Reset %s and refunded its experience", date),
	}, nil
}

func (s *Server) handleResetAll(ctx context.Context, req *mcp.CallToolRequest, input resetAllInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, fmt.Errorf("reset_all requires confirm=true")
	}

	if _, err := s.tracker.ResetAll(nil); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset: %w", err)
	}
	return nil, simpleOutput{
		Message: "All practice history erased; every track is back to level 1",
	}, nil
}
