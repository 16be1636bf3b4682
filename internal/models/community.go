package models

import "time"

// CommunityStory is one shared post on the community impact board.
type CommunityStory struct {
	StoryID  string    `json:"story_id"`
	Name     string    `json:"name"`
	Text     string    `json:"text"`
	ImpactKg float64   `json:"impact_kg,omitempty"` // optional avoided-CO2 claim
	PostedAt time.Time `json:"posted_at"`
}

// CommunityBoard is the rendered board: newest stories plus the
// combined avoided-impact total.
type CommunityBoard struct {
	Stories       []CommunityStory `json:"stories"`
	TotalImpactKg float64          `json:"total_impact_kg"`
}
