package models

import "time"

// HabitLog is one logged eco-action, e.g. "biked_to_work" x2.
type HabitLog struct {
	LogID    string    `json:"log_id"`
	Action   string    `json:"action"`
	Count    float64   `json:"count"`
	LoggedAt time.Time `json:"logged_at"`
}

// HabitStreak sums an action's counts over the rolling last-7-days
// window.
type HabitStreak struct {
	Action    string  `json:"action"`
	WeekCount float64 `json:"week_count"`
}
