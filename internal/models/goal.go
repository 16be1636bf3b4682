package models

import "time"

// Goal is a user pledge: reduce impact by TargetPct before Due.
type Goal struct {
	GoalID    string    `json:"goal_id"`
	Title     string    `json:"title"`
	TargetPct float64   `json:"target_pct"`
	Due       string    `json:"due,omitempty"` // YYYY-MM-DD, informational
	Progress  float64   `json:"progress"`      // 0..100
	CreatedAt time.Time `json:"created_at"`
}
