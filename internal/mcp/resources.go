// ABOUTME: MCP resource implementations for the practice tracker.
// ABOUTME: Provides practice://today, practice://ledger, and practice://calendar.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/practice/internal/dates"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// practice://today - Today's record with completion status
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "practice://today",
		Name:        "Today's Practice",
		Description: "Today's practice record with per-task minutes and completion status",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// practice://ledger - Experience and levels for every track
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "practice://ledger",
		Name:        "Experience Ledger",
		Description: "Current level and experience for the basic, vocal, and conducting tracks",
		MIMEType:    "application/json",
	}, s.handleLedgerResource)

	// practice://calendar - Current month's completion map
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "practice://calendar",
		Name:        "Practice Calendar",
		Description: "Per-day completion status for the current month plus the streak",
		MIMEType:    "application/json",
	}, s.handleCalendarResource)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return resourceResult("practice://today", s.dayOutput(s.tracker.Today()))
}

func (s *Server) handleLedgerResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	ledger := s.tracker.Ledger()

	tracks := make(map[string]any, len(models.AllTracks))
	for _, track := range models.AllTracks {
		st := ledger.State(track)
		tracks[string(track)] = map[string]any{
			"label":    models.TrackLabels[track],
			"level":    st.Level,
			"xp":       st.XP,
			"required": models.RequirementFor(st.Level),
		}
	}
	return resourceResult("practice://ledger", tracks)
}

func (s *Server) handleCalendarResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.tracker.Today()

	statuses := make(map[string]string)
	for _, d := range dates.MonthDates(today) {
		switch s.tracker.DayStatusOn(d) {
		case tracker.StatusDone:
			statuses[d] = "done"
		case tracker.StatusPartial:
			statuses[d] = "partial"
		default:
			statuses[d] = "empty"
		}
	}

	return resourceResult("practice://calendar", map[string]any{
		"month":  today[:7],
		"days":   statuses,
		"streak": s.tracker.Streak(),
	})
}
